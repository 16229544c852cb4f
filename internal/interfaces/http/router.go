package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mraposo/cobranca-api/internal/application/auth"
	"github.com/mraposo/cobranca-api/internal/application/billing"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *billing.CustomerUseCase
	ChargeUC   *billing.ChargeUseCase
	Users      repository.UserRepository
	JWTSecret  string
}

// Router registra as rotas da API. Cadastro e login são públicos; todo o
// resto exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	chargeHandler := NewChargeHandler(deps.ChargeUC)

	// Públicas
	app.Post("/users", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Protegidas (requerem Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	protected.Get("/users/me", authHandler.Profile)
	protected.Put("/users/me", authHandler.UpdateProfile)

	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	// Rotas estáticas antes de /:id
	customers.Get("/search", customerHandler.Search)
	customers.Get("/status", customerHandler.ListByStatus)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Get("/:id/charges", chargeHandler.ListByCustomer)

	charges := protected.Group("/charges")
	charges.Post("/", chargeHandler.Create)
	charges.Get("/", chargeHandler.List)
	charges.Get("/search", chargeHandler.Search)
	charges.Get("/report", chargeHandler.Report)
	charges.Get("/:id", chargeHandler.GetByID)
	charges.Put("/:id", chargeHandler.Update)
	charges.Delete("/:id", chargeHandler.Delete)
}
