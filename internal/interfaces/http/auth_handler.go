package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mraposo/cobranca-api/internal/application/auth"
	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain"
)

// AuthHandler trata cadastro, login e perfil do usuário.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /users
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Já existe usuário com o e-mail informado."})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return respondNotFound(c, "Usuário não encontrado.")
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Profile GET /users/me
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user := AuthenticatedUser(c)
	return c.JSON(dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		CPF:   user.CPF,
		Phone: user.Phone,
	})
}

// UpdateProfile PUT /users/me
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Corpo da requisição inválido."})
	}
	user := AuthenticatedUser(c)
	if err := h.uc.UpdateProfile(c.Context(), user.ID, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
