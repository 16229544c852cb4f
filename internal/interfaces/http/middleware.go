package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mraposo/cobranca-api/pkg/logger"
)

// LocalRequestID chave do id da requisição em c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra cada requisição com um id próprio, método, rota,
// status e duração.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		err := c.Next()
		if err != nil {
			// Deixa o error handler do Fiber montar a resposta antes de logar.
			_ = c.App().ErrorHandler(c, err)
		}

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("requisição atendida")
		return nil
	}
}
