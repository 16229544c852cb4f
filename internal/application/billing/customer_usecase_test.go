package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mraposo/cobranca-api/internal/application/billing"
	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
	"github.com/mraposo/cobranca-api/internal/domain/entity"
)

func newCustomerFixture() (*billing.CustomerUseCase, *stubCustomerRepo, *stubChargeRepo) {
	customers := newStubCustomerRepo()
	charges := newStubChargeRepo(customers)
	return billing.NewCustomerUseCase(customers, charges), customers, charges
}

func validCustomerRequest() dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:  "Maria Souza",
		Email: "maria@exemplo.com",
		CPF:   "123.456.789-01",
		Phone: "11999990000",
	}
}

func seedCustomer(t *testing.T, customers *stubCustomerRepo, name, email, cpf string) int64 {
	t.Helper()
	customer := &entity.Customer{
		UserID: 1,
		Name:   name,
		Email:  email,
		CPF:    cpf,
		Phone:  "11999990000",
		Status: entity.CustomerStatusCurrent,
	}
	require.NoError(t, customers.Create(context.Background(), customer))
	return customer.ID
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("cadastra com endereço opcional vazio", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()

		require.NoError(t, uc.Create(ctx, 7, validCustomerRequest()))

		stored, err := customers.FindByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, int64(7), stored.UserID)
		assert.Equal(t, "Maria Souza", stored.Name)
	})

	t.Run("e-mail duplicado", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Outra Pessoa", "maria@exemplo.com", "999.999.999-99")

		err := uc.Create(ctx, 7, validCustomerRequest())

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("cpf duplicado", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Outra Pessoa", "outra@exemplo.com", "123.456.789-01")

		err := uc.Create(ctx, 7, validCustomerRequest())

		assert.ErrorIs(t, err, domain.ErrDuplicateCPF)
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		uc, _, _ := newCustomerFixture()
		in := validCustomerRequest()
		in.Name = ""

		err := uc.Create(ctx, 7, in)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "nome", vErr.Field)
	})

	t.Run("cpf com tamanho inválido", func(t *testing.T) {
		uc, _, _ := newCustomerFixture()
		in := validCustomerRequest()
		in.CPF = "12345678901"

		err := uc.Create(ctx, 7, in)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "cpf", vErr.Field)
	})
}

func TestCustomerList(t *testing.T) {
	ctx := context.Background()

	t.Run("recalcula a situação a partir das cobranças", func(t *testing.T) {
		uc, customers, charges := newCustomerFixture()
		delinquentID := seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
		currentID := seedCustomer(t, customers, "João Lima", "joao@exemplo.com", "987.654.321-09")
		require.NoError(t, charges.Create(ctx, &entity.Charge{
			CustomerID:  delinquentID,
			Description: "Mensalidade",
			Amount:      decimal.RequireFromString("100.00"),
			DueDate:     time.Now().AddDate(0, 0, -7),
			Status:      entity.ChargeStatusOverdue,
		}))
		require.NoError(t, charges.Create(ctx, &entity.Charge{
			CustomerID:  currentID,
			Description: "Mensalidade",
			Amount:      decimal.RequireFromString("100.00"),
			DueDate:     time.Now().AddDate(0, 0, 7),
			Status:      entity.ChargeStatusPending,
		}))

		out, err := uc.List(ctx)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, entity.CustomerStatusDelinquent, out[0].Status)
		assert.Equal(t, entity.CustomerStatusCurrent, out[1].Status)

		// a situação derivada fica persistida para a listagem particionada
		stored, err := customers.FindByID(ctx, delinquentID)
		require.NoError(t, err)
		assert.Equal(t, entity.CustomerStatusDelinquent, stored.Status)
	})

	t.Run("cliente sem cobranças fica Em dia", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")

		out, err := uc.List(ctx)

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, entity.CustomerStatusCurrent, out[0].Status)
	})

	t.Run("sem clientes", func(t *testing.T) {
		uc, _, _ := newCustomerFixture()

		_, err := uc.List(ctx)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("mantém o próprio e-mail e cpf", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		id := seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
		in := validCustomerRequest()
		in.Name = "Maria de Souza"

		require.NoError(t, uc.Update(ctx, id, in))

		stored, err := customers.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Maria de Souza", stored.Name)
	})

	t.Run("e-mail de outro cliente", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		id := seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
		seedCustomer(t, customers, "João Lima", "joao@exemplo.com", "987.654.321-09")
		in := validCustomerRequest()
		in.Email = "joao@exemplo.com"

		err := uc.Update(ctx, id, in)

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		uc, _, _ := newCustomerFixture()

		err := uc.Update(ctx, 99, validCustomerRequest())

		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})
}

func TestCustomerSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("consulta numérica compara com o cpf sem separadores", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
		seedCustomer(t, customers, "João Lima", "joao@exemplo.com", "987.654.321-09")

		out, err := uc.Search(ctx, "12345678901")

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Maria Souza", out[0].Name)
	})

	t.Run("consulta numérica parcial não casa", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")

		_, err := uc.Search(ctx, "123456")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("consulta textual busca por nome ou e-mail", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
		seedCustomer(t, customers, "João Lima", "joao@exemplo.com", "987.654.321-09")

		out, err := uc.Search(ctx, "MARIA")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Maria Souza", out[0].Name)

		out, err = uc.Search(ctx, "joao@")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "João Lima", out[0].Name)
	})

	t.Run("sem resultado", func(t *testing.T) {
		uc, customers, _ := newCustomerFixture()
		seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")

		_, err := uc.Search(ctx, "pedro")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCustomerListByStatus(t *testing.T) {
	ctx := context.Background()
	uc, customers, _ := newCustomerFixture()
	seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")
	id := seedCustomer(t, customers, "João Lima", "joao@exemplo.com", "987.654.321-09")
	require.NoError(t, customers.UpdateStatus(ctx, id, entity.CustomerStatusDelinquent))

	out, err := uc.ListByStatus(ctx)

	require.NoError(t, err)
	require.Len(t, out.Delinquent, 1)
	assert.Equal(t, "João Lima", out.Delinquent[0].Name)
	require.Len(t, out.Current, 1)
	assert.Equal(t, "Maria Souza", out.Current[0].Name)
}

func TestCustomerGetByID(t *testing.T) {
	ctx := context.Background()
	uc, customers, _ := newCustomerFixture()
	id := seedCustomer(t, customers, "Maria Souza", "maria@exemplo.com", "123.456.789-01")

	out, err := uc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", out.Name)

	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
