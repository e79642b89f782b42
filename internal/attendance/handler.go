package attendance

import (
	"errors"
	"log"

	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CheckInRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}

// POST /api/attendance/check-in
// Салбарыг гишүүний одоогийн салбараас авна.
func CheckInHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CheckInRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		att := models.Attendance{MemberID: body.MemberID}
		if err := st.CreateAttendance(&att); err != nil {
			if errors.Is(err, storage.ErrInvalidRef) {
				return fiber.NewError(fiber.StatusBadRequest, "Заасан гишүүн байхгүй")
			}
			log.Printf("attendance check-in failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Ирц бүртгэж чадсангүй")
		}

		return c.Status(fiber.StatusCreated).JSON(att)
	}
}

// POST /api/attendance/:id/check-out
func CheckOutHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		att, err := st.CloseAttendance(c.Params("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ирцийн бичлэг олдсонгүй")
			}
			log.Printf("attendance check-out failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Ирц хаагдсангүй")
		}
		return c.JSON(att)
	}
}

// GET /api/members/:id/attendance
func MemberAttendanceHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := st.AttendanceByMember(c.Params("id"))
		if err != nil {
			log.Printf("attendance list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Ирцийн түүхийг уншиж чадсангүй")
		}
		return c.JSON(rows)
	}
}
