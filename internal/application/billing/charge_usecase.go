package billing

import (
	"context"
	"strconv"
	"time"

	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
	domainbilling "github.com/mraposo/cobranca-api/internal/domain/billing"
	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

// ChargeUseCase casos de uso de cobranças: CRUD, pesquisa e relatório por
// status.
type ChargeUseCase struct {
	charges   repository.ChargeRepository
	customers repository.CustomerRepository
}

// NewChargeUseCase constrói o caso de uso.
func NewChargeUseCase(charges repository.ChargeRepository, customers repository.CustomerRepository) *ChargeUseCase {
	return &ChargeUseCase{charges: charges, customers: customers}
}

// Create cadastra uma cobrança para um cliente existente, aplicando a
// derivação de status (Pendente com vencimento no passado grava Vencida).
func (uc *ChargeUseCase) Create(ctx context.Context, in dto.CreateChargeRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Amount == nil {
		return domain.NewValidationError("valor", "É necessário informar o campo valor")
	}
	dueDate, err := dto.ParseDate("vencimento", in.DueDate)
	if err != nil {
		return err
	}
	customer, err := uc.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	charge := &entity.Charge{
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Amount:      *in.Amount,
		DueDate:     dueDate,
		Status:      domainbilling.DeriveChargeStatus(in.Status, dueDate, time.Now()),
	}
	return uc.charges.Create(ctx, charge)
}

// List devolve todas as cobranças com o nome do cliente, ordenadas por id.
func (uc *ChargeUseCase) List(ctx context.Context) ([]dto.ChargeResponse, error) {
	rows, err := uc.charges.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return toChargeResponses(rows), nil
}

// ListByCustomer devolve as cobranças de um cliente existente; lista vazia é
// um resultado válido.
func (uc *ChargeUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]dto.ChargeResponse, error) {
	customer, err := uc.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	rows, err := uc.charges.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toChargeResponses(rows), nil
}

// GetByID devolve o detalhe de uma cobrança.
func (uc *ChargeUseCase) GetByID(ctx context.Context, id int64) (*dto.ChargeResponse, error) {
	row, err := uc.charges.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrChargeNotFound
	}
	out := toChargeResponse(*row)
	return &out, nil
}

// Update atualiza uma cobrança existente, reaplicando a derivação de status.
func (uc *ChargeUseCase) Update(ctx context.Context, id int64, in dto.UpdateChargeRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Amount == nil {
		return domain.NewValidationError("valor", "É necessário informar o campo valor")
	}
	dueDate, err := dto.ParseDate("vencimento", in.DueDate)
	if err != nil {
		return err
	}
	charge, err := uc.charges.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if charge == nil {
		return domain.ErrChargeNotFound
	}
	charge.Description = in.Description
	charge.Amount = *in.Amount
	charge.DueDate = dueDate
	charge.Status = domainbilling.DeriveChargeStatus(in.Status, dueDate, time.Now())
	return uc.charges.Update(ctx, charge)
}

// Delete exclui uma cobrança. Só cobranças Pendentes podem ser excluídas.
func (uc *ChargeUseCase) Delete(ctx context.Context, id int64) error {
	charge, err := uc.charges.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if charge == nil {
		return domain.ErrChargeNotFound
	}
	if charge.Status != entity.ChargeStatusPending {
		return domain.ErrInvalidState
	}
	return uc.charges.Delete(ctx, id)
}

// Search faz pesquisa livre: consulta numérica compara com o id da cobrança;
// qualquer outra faz busca case-insensitive por substring do nome do cliente.
func (uc *ChargeUseCase) Search(ctx context.Context, q string) ([]dto.ChargeResponse, error) {
	var rows []repository.ChargeWithCustomer
	if isNumericQuery(q) {
		id, err := strconv.ParseInt(q, 10, 64)
		if err == nil {
			row, err := uc.charges.FindDetailByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if row != nil {
				rows = append(rows, *row)
			}
		}
	} else {
		var err error
		rows, err = uc.charges.SearchByCustomerName(ctx, q)
		if err != nil {
			return nil, err
		}
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return toChargeResponses(rows), nil
}

// Report devolve as cobranças particionadas por status, cada grupo com a
// soma dos valores (zero quando o grupo está vazio).
func (uc *ChargeUseCase) Report(ctx context.Context) (*dto.ChargeReportResponse, error) {
	paid, err := uc.reportGroup(ctx, entity.ChargeStatusPaid)
	if err != nil {
		return nil, err
	}
	overdue, err := uc.reportGroup(ctx, entity.ChargeStatusOverdue)
	if err != nil {
		return nil, err
	}
	pending, err := uc.reportGroup(ctx, entity.ChargeStatusPending)
	if err != nil {
		return nil, err
	}
	return &dto.ChargeReportResponse{
		Paid:    *paid,
		Overdue: *overdue,
		Pending: *pending,
	}, nil
}

func (uc *ChargeUseCase) reportGroup(ctx context.Context, status string) (*dto.ChargeReportGroup, error) {
	rows, err := uc.charges.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sum, err := uc.charges.SumByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return &dto.ChargeReportGroup{
		Sum:     sum,
		Charges: toChargeResponses(rows),
	}, nil
}

func toChargeResponse(row repository.ChargeWithCustomer) dto.ChargeResponse {
	return dto.ChargeResponse{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		Description:  row.Description,
		Amount:       row.Amount,
		DueDate:      row.DueDate.Format("2006-01-02"),
		Status:       row.Status,
	}
}

func toChargeResponses(rows []repository.ChargeWithCustomer) []dto.ChargeResponse {
	out := make([]dto.ChargeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toChargeResponse(r))
	}
	return out
}
