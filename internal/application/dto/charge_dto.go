package dto

import "github.com/shopspring/decimal"

// CreateChargeRequest body para POST /charges.
// valor e vencimento são validados explicitamente no caso de uso, depois das
// tags, preservando a ordem de declaração dos campos.
// Amount é ponteiro para distinguir campo ausente de zero explícito: só a
// ausência é erro de validação.
type CreateChargeRequest struct {
	CustomerID  int64            `json:"cliente_id" validate:"required"`
	Description string           `json:"descricao" validate:"required"`
	Status      string           `json:"status" validate:"required,oneof=Pendente Vencida Paga"`
	Amount      *decimal.Decimal `json:"valor" validate:"-"`
	DueDate     string           `json:"vencimento" validate:"-"`
}

// UpdateChargeRequest body para PUT /charges/:id.
type UpdateChargeRequest struct {
	Description string           `json:"descricao" validate:"required"`
	Status      string           `json:"status" validate:"required,oneof=Pendente Vencida Paga"`
	Amount      *decimal.Decimal `json:"valor" validate:"-"`
	DueDate     string           `json:"vencimento" validate:"-"`
}

// ChargeResponse cobrança em listagens e detalhe, com o nome do cliente
// resolvido pelo join.
type ChargeResponse struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"nome_cliente"`
	Description  string          `json:"descricao"`
	Amount       decimal.Decimal `json:"valor"`
	DueDate      string          `json:"vencimento"`
	Status       string          `json:"status"`
}

// ChargeReportGroup grupo do relatório por status: membros e soma dos valores.
type ChargeReportGroup struct {
	Sum     decimal.Decimal  `json:"soma"`
	Charges []ChargeResponse `json:"cobrancas"`
}

// ChargeReportResponse relatório particionado por status.
type ChargeReportResponse struct {
	Paid    ChargeReportGroup `json:"cobrancasPagas"`
	Overdue ChargeReportGroup `json:"cobrancasVencidas"`
	Pending ChargeReportGroup `json:"cobrancasPrevistas"`
}
