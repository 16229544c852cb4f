package repository

import (
	"context"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
)

// CustomerRepository define o porto de persistência para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	// ListAll devolve todos os clientes ordenados por id.
	ListAll(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// UpdateStatus grava apenas o status derivado (recomputação de listagem).
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByStatus(ctx context.Context, status string) ([]entity.Customer, error)
	// SearchByNameOrEmail faz busca case-insensitive por substring.
	SearchByNameOrEmail(ctx context.Context, q string) ([]entity.Customer, error)
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
	CPFInUse(ctx context.Context, cpf string, excludeID int64) (bool, error)
}
