package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	docs "github.com/harborline/catalog_api/docs"
	"github.com/harborline/catalog_api/services/handlers"
	"github.com/harborline/catalog_api/shared"
)

// HttpService owns the fiber app and the gate ordering: auth first, then the
// rate limiter, then route dispatch. The first rejection terminates the
// request; health, the docs and the root redirect bypass both gates so
// liveness checks stay reachable regardless of quota state.
type HttpService struct {
	context.DefaultService

	itemSvc      *ItemService
	authSvc      *AuthMiddleware
	rateLimitSvc *RateLimitService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.itemSvc = ctx.Service(ITEM_SVC).(*ItemService)
	svc.authSvc = ctx.Service(AUTH_MIDDLEWARE_SVC).(*AuthMiddleware)
	svc.rateLimitSvc = ctx.Service(RATE_LIMIT_SVC).(*RateLimitService)

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	docs.SwaggerInfo.BasePath = "/"

	svc.server = svc.buildApp()

	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *HttpService) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          svc.handleError,
	})

	app.Use(recover.New())
	app.Use(requestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + shared.HeaderAPIKey,
	}))
	app.Use(MonitoringMiddleware())

	// Ungated routes: no business cost, must stay reachable.
	app.Get("/health", svc.health)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusFound)
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	itemHandler := handlers.NewItemHandler(svc.itemSvc)

	// Gate order is fixed: a rejected key never consumes a permit, and a
	// rejected request never reaches the item service.
	v1 := app.Group("/v1", svc.authSvc.RequireAPIKey(), svc.rateLimitSvc.Middleware())

	v1.Get("/items", itemHandler.ListItems)
	v1.Post("/items", itemHandler.CreateItem)
	v1.Get("/items/:id", itemHandler.GetItem)
	v1.Put("/items/:id", itemHandler.UpdateItem)
	v1.Delete("/items/:id", itemHandler.DeleteItem)

	return app
}

// @Summary Health
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (svc *HttpService) health(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "OK",
	})
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}

func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(shared.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(shared.RequestID, id)
		c.Set(shared.HeaderRequestID, id)

		return c.Next()
	}
}
