package dashboard

import (
	"log"

	"vegete-backend/internal/reporting"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stats
func StatsHandler(engine *reporting.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := engine.DashboardStats()
		if err != nil {
			log.Printf("dashboard stats failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Хянах самбарын тоо баримт гарсангүй")
		}
		return c.JSON(stats)
	}
}

// GET /api/analytics
func AnalyticsHandler(engine *reporting.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		analytics, err := engine.Analytics()
		if err != nil {
			log.Printf("analytics failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Аналитик тоо баримт гарсангүй")
		}
		return c.JSON(analytics)
	}
}

// GET /api/investor
func InvestorHandler(engine *reporting.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := engine.InvestorStats()
		if err != nil {
			log.Printf("investor stats failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Хөрөнгө оруулагчийн тоо баримт гарсангүй")
		}
		return c.JSON(stats)
	}
}
