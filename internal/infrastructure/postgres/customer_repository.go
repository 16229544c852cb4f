package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, usuario_id, nome, email, cpf, telefone, cep, logradouro, complemento, bairro, cidade, estado, status`

// CustomerRepo implementação do porto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador de persistência de clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente e preenche o ID gerado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO clientes (usuario_id, nome, email, cpf, telefone, cep, logradouro, complemento, bairro, cidade, estado, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.UserID, customer.Name, customer.Email, customer.CPF, customer.Phone,
		customer.ZipCode, customer.Street, customer.Complement, customer.District,
		customer.City, customer.State, customer.Status,
	).Scan(&customer.ID)
	if err != nil {
		if dupErr := uniqueViolationError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// FindByID busca um cliente por id; (nil, nil) quando não existe.
func (r *CustomerRepo) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE id = $1`
	row := r.q.QueryRow(ctx, query, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// ListAll devolve todos os clientes ordenados por id.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes ORDER BY id`
	return r.list(ctx, query)
}

// ListByStatus devolve os clientes na situação indicada, ordenados por id.
func (r *CustomerRepo) ListByStatus(ctx context.Context, status string) ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE status = $1 ORDER BY id`
	return r.list(ctx, query, status)
}

// SearchByNameOrEmail busca case-insensitive por substring de nome ou e-mail.
func (r *CustomerRepo) SearchByNameOrEmail(ctx context.Context, q string) ([]entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM clientes
		WHERE nome ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY id`
	return r.list(ctx, query, q)
}

func (r *CustomerRepo) list(ctx context.Context, query string, args ...any) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// Update atualiza os dados cadastrais do cliente (status fica de fora: é
// gravado apenas pela recomputação, via UpdateStatus).
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE clientes
		SET nome = $2, email = $3, cpf = $4, telefone = $5, cep = $6, logradouro = $7,
		    complemento = $8, bairro = $9, cidade = $10, estado = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.CPF, customer.Phone,
		customer.ZipCode, customer.Street, customer.Complement, customer.District,
		customer.City, customer.State,
	)
	if err != nil {
		if dupErr := uniqueViolationError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// UpdateStatus grava o status derivado do cliente.
func (r *CustomerRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE clientes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status cliente: %w", err)
	}
	return nil
}

// EmailInUse verifica se o e-mail pertence a outro cliente.
func (r *CustomerRepo) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.inUse(ctx, `SELECT EXISTS (SELECT 1 FROM clientes WHERE email = $1 AND id != $2)`, email, excludeID)
}

// CPFInUse verifica se o CPF pertence a outro cliente.
func (r *CustomerRepo) CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	return r.inUse(ctx, `SELECT EXISTS (SELECT 1 FROM clientes WHERE cpf = $1 AND id != $2)`, cpf, excludeID)
}

func (r *CustomerRepo) inUse(ctx context.Context, query string, value any, excludeID int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check unicidade cliente: %w", err)
	}
	return exists, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.CPF, &c.Phone,
		&c.ZipCode, &c.Street, &c.Complement, &c.District, &c.City, &c.State,
		&c.Status,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
