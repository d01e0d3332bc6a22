// http/middleware.go
package http

import (
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AllowedMethods are the methods cross-origin callers may use.
var AllowedMethods = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}

// corsMiddleware accepts every origin and header. The request origin is
// echoed instead of "*" because credentials are allowed.
// Not a security boundary; narrow it before exposing real data.
func corsMiddleware(c *fiber.Ctx) error {
	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" {
		return c.Next()
	}

	c.Vary(fiber.HeaderOrigin)
	c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")

	reqMethod := c.Get(fiber.HeaderAccessControlRequestMethod)
	if c.Method() != fiber.MethodOptions || reqMethod == "" {
		return c.Next()
	}

	// Preflight
	c.Set(fiber.HeaderAccessControlAllowMethods, strings.Join(AllowedMethods, ", "))
	c.Set(fiber.HeaderAccessControlMaxAge, "600")
	if headers := c.Get(fiber.HeaderAccessControlRequestHeaders); headers != "" {
		c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
	}

	if !slices.Contains(AllowedMethods, strings.ToUpper(reqMethod)) {
		return c.Status(fiber.StatusBadRequest).SendString("Disallowed CORS method")
	}
	return c.SendStatus(fiber.StatusOK)
}

// requestLogger writes one line per request. Errors from the chain are
// rendered here so the logged status is the one the client sees.
func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}

		rid, _ := c.Locals("requestid").(string)
		event.
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")

		return nil
	}
}
