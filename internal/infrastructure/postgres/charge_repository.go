package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

var _ repository.ChargeRepository = (*ChargeRepo)(nil)

// Colunas das listagens: a cobrança com o nome do cliente resolvido.
const chargeJoinSelect = `
	SELECT cobrancas.id, cobrancas.cliente_id, clientes.nome AS nome_cliente,
	       cobrancas.descricao, cobrancas.valor, cobrancas.vencimento, cobrancas.status
	FROM cobrancas
	JOIN clientes ON cobrancas.cliente_id = clientes.id`

// ChargeRepo implementação do porto ChargeRepository sobre PostgreSQL.
type ChargeRepo struct {
	q Querier
}

// NewChargeRepository constrói o adaptador de persistência de cobranças.
func NewChargeRepository(q Querier) *ChargeRepo {
	return &ChargeRepo{q: q}
}

// Create persiste uma nova cobrança e preenche o ID gerado.
func (r *ChargeRepo) Create(ctx context.Context, charge *entity.Charge) error {
	query := `
		INSERT INTO cobrancas (cliente_id, descricao, valor, vencimento, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		charge.CustomerID, charge.Description, charge.Amount, charge.DueDate, charge.Status,
	).Scan(&charge.ID)
	if err != nil {
		return fmt.Errorf("insert cobranca: %w", err)
	}
	return nil
}

// FindByID busca uma cobrança por id, sem join; (nil, nil) quando não existe.
func (r *ChargeRepo) FindByID(ctx context.Context, id int64) (*entity.Charge, error) {
	query := `SELECT id, cliente_id, descricao, valor, vencimento, status FROM cobrancas WHERE id = $1`
	var c entity.Charge
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CustomerID, &c.Description, &c.Amount, &c.DueDate, &c.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cobranca: %w", err)
	}
	return &c, nil
}

// FindDetailByID busca uma cobrança com o nome do cliente; (nil, nil) quando
// não existe.
func (r *ChargeRepo) FindDetailByID(ctx context.Context, id int64) (*repository.ChargeWithCustomer, error) {
	row := r.q.QueryRow(ctx, chargeJoinSelect+` WHERE cobrancas.id = $1`, id)
	c, err := scanChargeWithCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cobranca detalhe: %w", err)
	}
	return c, nil
}

// ListAll devolve todas as cobranças ordenadas por id.
func (r *ChargeRepo) ListAll(ctx context.Context) ([]repository.ChargeWithCustomer, error) {
	return r.list(ctx, chargeJoinSelect+` ORDER BY cobrancas.id`)
}

// ListByCustomer devolve as cobranças de um cliente, ordenadas por id.
func (r *ChargeRepo) ListByCustomer(ctx context.Context, customerID int64) ([]repository.ChargeWithCustomer, error) {
	return r.list(ctx, chargeJoinSelect+` WHERE cobrancas.cliente_id = $1 ORDER BY cobrancas.id`, customerID)
}

// ListByStatus devolve as cobranças no status indicado, ordenadas por id.
func (r *ChargeRepo) ListByStatus(ctx context.Context, status string) ([]repository.ChargeWithCustomer, error) {
	return r.list(ctx, chargeJoinSelect+` WHERE cobrancas.status = $1 ORDER BY cobrancas.id`, status)
}

// SearchByCustomerName busca case-insensitive por substring do nome do cliente.
func (r *ChargeRepo) SearchByCustomerName(ctx context.Context, q string) ([]repository.ChargeWithCustomer, error) {
	return r.list(ctx, chargeJoinSelect+` WHERE clientes.nome ILIKE '%' || $1 || '%' ORDER BY cobrancas.id`, q)
}

func (r *ChargeRepo) list(ctx context.Context, query string, args ...any) ([]repository.ChargeWithCustomer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cobrancas: %w", err)
	}
	defer rows.Close()
	var list []repository.ChargeWithCustomer
	for rows.Next() {
		c, err := scanChargeWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cobranca: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// SumByStatus soma os valores das cobranças no status; COALESCE garante zero
// quando o grupo está vazio.
func (r *ChargeRepo) SumByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(valor), 0) FROM cobrancas WHERE status = $1`
	if err := r.q.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum cobrancas: %w", err)
	}
	return sum, nil
}

// Update atualiza uma cobrança.
func (r *ChargeRepo) Update(ctx context.Context, charge *entity.Charge) error {
	query := `
		UPDATE cobrancas SET descricao = $2, valor = $3, vencimento = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		charge.ID, charge.Description, charge.Amount, charge.DueDate, charge.Status,
	)
	if err != nil {
		return fmt.Errorf("update cobranca: %w", err)
	}
	return nil
}

// Delete exclui uma cobrança por id.
func (r *ChargeRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cobrancas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cobranca: %w", err)
	}
	return nil
}

func scanChargeWithCustomer(row pgx.Row) (*repository.ChargeWithCustomer, error) {
	var c repository.ChargeWithCustomer
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.CustomerName,
		&c.Description, &c.Amount, &c.DueDate, &c.Status,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
