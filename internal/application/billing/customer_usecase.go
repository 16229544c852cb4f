package billing

import (
	"context"

	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
	domainbilling "github.com/mraposo/cobranca-api/internal/domain/billing"
	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: CRUD, pesquisa e listagem por
// situação.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	charges   repository.ChargeRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, charges repository.ChargeRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, charges: charges}
}

// Create cadastra um cliente pertencente ao usuário autenticado.
func (uc *CustomerUseCase) Create(ctx context.Context, userID int64, in dto.CustomerRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	inUse, err := uc.customers.EmailInUse(ctx, in.Email, 0)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDuplicateEmail
	}
	inUse, err = uc.customers.CPFInUse(ctx, in.CPF, 0)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDuplicateCPF
	}
	customer := &entity.Customer{
		UserID:     userID,
		Name:       in.Name,
		Email:      in.Email,
		CPF:        in.CPF,
		Phone:      in.Phone,
		ZipCode:    in.ZipCode,
		Street:     in.Street,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		State:      in.State,
		// Sem cobranças ainda, então a situação inicial é sempre Em dia.
		Status: entity.CustomerStatusCurrent,
	}
	return uc.customers.Create(ctx, customer)
}

// List devolve todos os clientes, recalculando antes a situação de cada um a
// partir das suas cobranças. O valor derivado só é persistido quando difere
// do armazenado; a listagem por situação depende do valor gravado aqui.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, domain.ErrNotFound
	}
	for i := range customers {
		rows, err := uc.charges.ListByCustomer(ctx, customers[i].ID)
		if err != nil {
			return nil, err
		}
		charges := make([]entity.Charge, 0, len(rows))
		for _, r := range rows {
			charges = append(charges, r.Charge)
		}
		status := domainbilling.DeriveCustomerStatus(charges)
		if status != customers[i].Status {
			if err := uc.customers.UpdateStatus(ctx, customers[i].ID, status); err != nil {
				return nil, err
			}
			customers[i].Status = status
		}
	}
	return toCustomerResponses(customers), nil
}

// GetByID devolve um cliente pelo id.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	out := toCustomerResponse(*customer)
	return &out, nil
}

// Update atualiza os dados do cliente. As verificações de unicidade excluem
// o próprio registro.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	inUse, err := uc.customers.EmailInUse(ctx, in.Email, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDuplicateEmail
	}
	inUse, err = uc.customers.CPFInUse(ctx, in.CPF, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDuplicateCPF
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.CPF = in.CPF
	customer.Phone = in.Phone
	customer.ZipCode = in.ZipCode
	customer.Street = in.Street
	customer.Complement = in.Complement
	customer.District = in.District
	customer.City = in.City
	customer.State = in.State
	return uc.customers.Update(ctx, customer)
}

// Search faz pesquisa livre: consulta numérica compara com o CPF sem
// separadores; qualquer outra faz busca case-insensitive por substring de
// nome ou e-mail.
func (uc *CustomerUseCase) Search(ctx context.Context, q string) ([]dto.CustomerResponse, error) {
	var (
		customers []entity.Customer
		err       error
	)
	if isNumericQuery(q) {
		customers, err = uc.searchByCPF(ctx, q)
	} else {
		customers, err = uc.customers.SearchByNameOrEmail(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponses(customers), nil
}

func (uc *CustomerUseCase) searchByCPF(ctx context.Context, q string) ([]entity.Customer, error) {
	all, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var matched []entity.Customer
	for _, c := range all {
		if cpfDigits(c.CPF) == q {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// ListByStatus devolve os clientes particionados por situação. Não dispara
// recomputação: reflete o último valor gravado pela listagem completa.
func (uc *CustomerUseCase) ListByStatus(ctx context.Context) (*dto.CustomersByStatusResponse, error) {
	delinquent, err := uc.customers.ListByStatus(ctx, entity.CustomerStatusDelinquent)
	if err != nil {
		return nil, err
	}
	current, err := uc.customers.ListByStatus(ctx, entity.CustomerStatusCurrent)
	if err != nil {
		return nil, err
	}
	return &dto.CustomersByStatusResponse{
		Delinquent: toCustomerResponses(delinquent),
		Current:    toCustomerResponses(current),
	}, nil
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Name:       c.Name,
		Email:      c.Email,
		CPF:        c.CPF,
		Phone:      c.Phone,
		ZipCode:    c.ZipCode,
		Street:     c.Street,
		Complement: c.Complement,
		District:   c.District,
		City:       c.City,
		State:      c.State,
		Status:     c.Status,
	}
}

func toCustomerResponses(customers []entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out
}
