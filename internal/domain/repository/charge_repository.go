package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
)

// ChargeWithCustomer é o modelo de leitura das listagens: a cobrança com o
// nome do cliente resolvido pelo join.
type ChargeWithCustomer struct {
	entity.Charge
	CustomerName string
}

// ChargeRepository define o porto de persistência para Charge.
type ChargeRepository interface {
	Create(ctx context.Context, charge *entity.Charge) error
	FindByID(ctx context.Context, id int64) (*entity.Charge, error)
	// FindDetailByID devolve a cobrança com o nome do cliente.
	FindDetailByID(ctx context.Context, id int64) (*ChargeWithCustomer, error)
	// ListAll devolve todas as cobranças ordenadas por id.
	ListAll(ctx context.Context) ([]ChargeWithCustomer, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]ChargeWithCustomer, error)
	ListByStatus(ctx context.Context, status string) ([]ChargeWithCustomer, error)
	// SumByStatus soma os valores das cobranças no status; zero quando não há nenhuma.
	SumByStatus(ctx context.Context, status string) (decimal.Decimal, error)
	// SearchByCustomerName faz busca case-insensitive por substring do nome do cliente.
	SearchByCustomerName(ctx context.Context, q string) ([]ChargeWithCustomer, error)
	Update(ctx context.Context, charge *entity.Charge) error
	Delete(ctx context.Context, id int64) error
}
