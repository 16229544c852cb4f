package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mraposo/cobranca-api/internal/application/billing"
	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
)

// ChargeHandler trata as rotas de cobranças (protegidas).
type ChargeHandler struct {
	uc *billing.ChargeUseCase
}

// NewChargeHandler constrói o handler.
func NewChargeHandler(uc *billing.ChargeUseCase) *ChargeHandler {
	return &ChargeHandler{uc: uc}
}

// Create POST /charges
func (h *ChargeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Cobrança cadastrada com sucesso."})
}

// List GET /charges
func (h *ChargeHandler) List(c *fiber.Ctx) error {
	charges, err := h.uc.List(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Nenhuma cobrança foi encontrada.")
		}
		return respondError(c, err)
	}
	return c.JSON(charges)
}

// ListByCustomer GET /customers/:id/charges
// Lista vazia é resposta válida quando o cliente existe.
func (h *ChargeHandler) ListByCustomer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	charges, err := h.uc.ListByCustomer(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(charges)
}

// GetByID GET /charges/:id
func (h *ChargeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	charge, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(charge)
}

// Update PUT /charges/:id
func (h *ChargeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cobrança editada com sucesso."})
}

// Delete DELETE /charges/:id
// Só cobranças Pendentes podem ser excluídas.
func (h *ChargeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Esta cobrança não pode ser excluída!"})
		}
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cobrança excluída com sucesso."})
}

// Search GET /charges/search?q=
func (h *ChargeHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "É necessário informar o termo da pesquisa."})
	}
	charges, err := h.uc.Search(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Nenhuma cobrança foi encontrada nesta pesquisa.")
		}
		return respondError(c, err)
	}
	return c.JSON(charges)
}

// Report GET /charges/report
func (h *ChargeHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
