package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário e preenche o ID gerado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (nome, email, senha, cpf, telefone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.CPF, user.Phone,
	).Scan(&user.ID)
	if err != nil {
		if dupErr := uniqueViolationError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByID busca um usuário por id; (nil, nil) quando não existe.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByEmail busca um usuário por e-mail; (nil, nil) quando não existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `SELECT id, nome, email, senha, cpf, telefone FROM usuarios ` + where
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CPF, &u.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update atualiza os dados do usuário.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios SET nome = $2, email = $3, senha = $4, cpf = $5, telefone = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CPF, user.Phone,
	)
	if err != nil {
		if dupErr := uniqueViolationError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// EmailInUse verifica se o e-mail pertence a outro usuário.
func (r *UserRepo) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.inUse(ctx, `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1 AND id != $2)`, email, excludeID)
}

// CPFInUse verifica se o CPF pertence a outro usuário.
func (r *UserRepo) CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	return r.inUse(ctx, `SELECT EXISTS (SELECT 1 FROM usuarios WHERE cpf = $1 AND id != $2)`, cpf, excludeID)
}

func (r *UserRepo) inUse(ctx context.Context, query string, value any, excludeID int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check unicidade usuario: %w", err)
	}
	return exists, nil
}
