package services

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/harborline/catalog_api/shared"
)

// AuthMiddleware guards the versioned API with a single static API key.
// With no key configured every protected request is rejected (fail closed).
type AuthMiddleware struct {
	context.DefaultService

	apiKey string
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Configure(ctx *context.Context) error {
	svc.apiKey = os.Getenv("API_KEY")
	if svc.apiKey == "" {
		log.Warn("API_KEY is not set; all protected routes will reject with 401")
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthMiddleware) Start() error {
	return nil
}

// RequireAPIKey compares the x-api-key header byte-exact against the
// configured secret. It runs before the rate limiter, so a rejected key
// never consumes a permit.
func (svc *AuthMiddleware) RequireAPIKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(shared.HeaderAPIKey)

		if svc.apiKey == "" || key != svc.apiKey {
			return shared.ResponseUnauthorized(c)
		}

		return c.Next()
	}
}
