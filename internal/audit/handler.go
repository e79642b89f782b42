package audit

import (
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs
func ListAuditLogsHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs, err := st.AuditLogs()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Аудитын бичлэгүүдийг уншиж чадсангүй")
		}
		return c.JSON(logs)
	}
}
