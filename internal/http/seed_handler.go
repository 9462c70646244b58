package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/karloscodes/cartridge"

	"salescope/internal/seeder"
)

const msgSeedCompleted = "10 sample customers, products, and orders inserted successfully!"

// SeedCreateAction replaces all customer, product, and order data with the
// fixed sample set. Previously generated reports survive a reseed.
func SeedCreateAction(ctx *cartridge.Context) error {
	s := seeder.NewSeeder(ctx.DBManager, ctx.Logger)

	if err := s.Seed(ctx.Ctx.UserContext()); err != nil {
		ctx.Logger.Error("Failed to seed sample data", slog.Any("error", err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to insert sample data.",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msgSeedCompleted,
	})
}
