package bootstrap

import (
	"offsetledger-backend/internal/config"
	"offsetledger-backend/internal/interfaces/router"

	"github.com/gofiber/fiber/v2"
)

// New loads config and creates the Fiber app with its backing stores.
// Embedding hosts import this package instead of internal.
func New() (*fiber.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	app, _, _, err := router.CreateApp(cfg)
	return app, err
}
