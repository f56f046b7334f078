package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber application with every route under /api/v1.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "cpu-scheduler",
		ErrorHandler: jsonErrorHandler,
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		RegisterRoutes(v1, h)
	}

	return app
}

func jsonErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}
