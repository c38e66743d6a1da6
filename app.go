package main

import (
	"platzistore/internal/handlers"
	"platzistore/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// appDeps are the collaborators newApp mounts on the router.
type appDeps struct {
	APIPrefix      string
	ReceiptPath    string
	ProductService handlers.ProductService
	AuthService    authService
	Logger         *zap.Logger
	AccessLog      bool
}

// authService is both the sign-in surface and the token verifier.
type authService interface {
	handlers.AuthService
	middleware.TokenVerifier
}

// newApp builds the fiber app with its middleware and every route.
func newApp(deps appDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "platzistore",
		ErrorHandler: middleware.ErrorHandler(deps.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(helmet.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("UserInfo: " + c.Get(fiber.HeaderUserAgent))
	})

	api := app.Group(deps.APIPrefix)
	handlers.NewAPIHandler(deps.ReceiptPath).RegisterRoutes(api)
	handlers.NewAuthHandler(deps.AuthService).RegisterRoutes(api)
	handlers.NewProductHandler(deps.ProductService, deps.AuthService).RegisterRoutes(api)

	app.Use(handlers.NotFound)
	return app
}
