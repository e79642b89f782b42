package attendance

import (
	"errors"
	"log"

	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreatePerformanceRequest struct {
	MemberID   string   `json:"memberId" validate:"required"`
	Weight     *float64 `json:"weight" validate:"omitempty,gt=0"`
	BenchPress *float64 `json:"benchPress" validate:"omitempty,gt=0"`
	Squat      *float64 `json:"squat" validate:"omitempty,gt=0"`
	Deadlift   *float64 `json:"deadlift" validate:"omitempty,gt=0"`
	Notes      *string  `json:"notes"`
}

// POST /api/performance-records
func CreatePerformanceHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePerformanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		rec := models.PerformanceRecord{
			MemberID:   body.MemberID,
			Weight:     body.Weight,
			BenchPress: body.BenchPress,
			Squat:      body.Squat,
			Deadlift:   body.Deadlift,
			Notes:      body.Notes,
		}
		if err := st.CreatePerformanceRecord(&rec); err != nil {
			if errors.Is(err, storage.ErrInvalidRef) {
				return fiber.NewError(fiber.StatusBadRequest, "Заасан гишүүн байхгүй")
			}
			log.Printf("performance record create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Үзүүлэлт бүртгэж чадсангүй")
		}

		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GET /api/members/:id/performance
func MemberPerformanceHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := st.PerformanceByMember(c.Params("id"))
		if err != nil {
			log.Printf("performance list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Үзүүлэлтүүдийг уншиж чадсангүй")
		}
		return c.JSON(rows)
	}
}
