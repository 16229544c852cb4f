// Package billing concentra as regras de ciclo de vida de status de
// cobranças e clientes. As funções são puras: recebem o relógio como
// parâmetro e não tocam a persistência.
package billing

import (
	"time"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
)

// DeriveChargeStatus calcula o status efetivo de uma cobrança no momento de
// criação ou atualização. Se o status solicitado é Pendente e o vencimento
// está estritamente antes de now, o status vira Vencida. A sobrescrita é de
// mão única: não é possível gravar Pendente com vencimento no passado.
// Qualquer outro status solicitado é devolvido como veio.
func DeriveChargeStatus(requested string, dueDate, now time.Time) string {
	if requested == entity.ChargeStatusPending && dueDate.Before(now) {
		return entity.ChargeStatusOverdue
	}
	return requested
}

// DeriveCustomerStatus calcula a situação de um cliente a partir do conjunto
// das suas cobranças, em qualquer ordem: Inadimplente se ao menos uma está
// Vencida, Em dia em qualquer outro caso (inclusive zero cobranças).
func DeriveCustomerStatus(charges []entity.Charge) string {
	for _, c := range charges {
		if c.Status == entity.ChargeStatusOverdue {
			return entity.CustomerStatusDelinquent
		}
	}
	return entity.CustomerStatusCurrent
}
