package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma cobrança.
//
// Transições: Pendente -> Vencida acontece automaticamente quando o
// vencimento fica no passado (avaliada em criação/atualização, nunca por
// job em background); Pendente/Vencida -> Paga apenas por atualização
// explícita; não há transição a partir de Paga.
const (
	ChargeStatusPending = "Pendente"
	ChargeStatusOverdue = "Vencida"
	ChargeStatusPaid    = "Paga"
)

// Charge representa uma cobrança emitida contra um cliente.
// Invariante: só pode ser excluída enquanto Status == Pendente.
type Charge struct {
	ID          int64
	CustomerID  int64
	Description string
	Amount      decimal.Decimal // 2 casas decimais
	DueDate     time.Time
	Status      string
}
