package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mraposo/cobranca-api/internal/application/billing"
	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
)

// CustomerHandler trata as rotas de clientes (protegidas).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	user := AuthenticatedUser(c)
	if err := h.uc.Create(c.Context(), user.ID, in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Cliente cadastrado com sucesso."})
}

// List GET /customers
// Recalcula a situação de cada cliente antes de responder.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Nenhum cliente foi encontrado.")
		}
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// GetByID GET /customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	customer, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Os dados do cliente foram alterados com sucesso."})
}

// Search GET /customers/search?q=
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "É necessário informar o termo da pesquisa."})
	}
	customers, err := h.uc.Search(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Nenhum cliente foi encontrado nesta pesquisa.")
		}
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// ListByStatus GET /customers/status
// Não dispara recomputação: reflete o último valor gravado pela listagem.
func (h *CustomerHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
