package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mraposo/cobranca-api/internal/application/dto"
	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
	"github.com/mraposo/cobranca-api/pkg/jwt"
)

// LocalAuthUser chave do usuário autenticado em c.Locals.
const LocalAuthUser = "usuario_autenticado"

// AuthMiddleware valida o Bearer Token, resolve o subject para um usuário e
// guarda o registro (sem o hash da senha) em c.Locals. Protege todas as
// rotas exceto cadastro e login.
//
// Contrato herdado: header ausente 401, token vazio 400, assinatura ou
// expiração inválida 500, usuário inexistente 404.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "É necessário utilizar um método de autenticação."})
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Token não informado."})
		}
		userID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "O usuário não foi encontrado."})
		}
		authUser := user.WithoutPassword()
		c.Locals(LocalAuthUser, &authUser)
		return c.Next()
	}
}

// AuthenticatedUser devolve o usuário do contexto (depois do middleware).
func AuthenticatedUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalAuthUser).(*entity.User)
	return u
}
