package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mraposo/cobranca-api/internal/domain"
)

// Querier abstrai pool e transação (pgxpool.Pool e pgx.Tx satisfazem).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolationError mapeia uma violação de constraint única (23505) para
// o erro de conflito do domínio, olhando o nome da constraint. Cobre o caso
// em que duas requisições concorrentes passam pelas verificações prévias.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "cpf") {
		return domain.ErrDuplicateCPF
	}
	return domain.ErrDuplicateEmail
}
