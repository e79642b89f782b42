package billing

import (
	"errors"
	"log"

	"vegete-backend/internal/audit"
	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreatePaymentRequest struct {
	MemberID string  `json:"memberId" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Month    string  `json:"month" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10 11 12"`
	Year     int     `json:"year" validate:"required,gte=2000"`
	Status   string  `json:"status"`
}

// POST /api/payments
// Салбарыг хүсэлтээс авахгүй — гишүүний одоогийн салбараас хадгалалтын
// давхарга өөрөө хуулна.
func CreatePaymentHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		payment := models.Payment{
			MemberID: body.MemberID,
			Amount:   body.Amount,
			Month:    body.Month,
			Year:     body.Year,
			Status:   body.Status,
		}
		if payment.Status == "" {
			payment.Status = "paid"
		}

		if err := st.CreatePayment(&payment); err != nil {
			if errors.Is(err, storage.ErrInvalidRef) {
				return fiber.NewError(fiber.StatusBadRequest, "Заасан гишүүн байхгүй")
			}
			log.Printf("payment create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Төлбөр бүртгэж чадсангүй")
		}

		audit.Record(c, st, audit.RecordOptions{
			EntityType:  "payment",
			EntityID:    payment.ID,
			Action:      models.AuditActionCreate,
			Description: "Төлбөрийн бичилт",
			After:       payment,
		})

		return c.Status(fiber.StatusCreated).JSON(payment)
	}
}

// GET /api/payments
func ListPaymentsHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := st.PaymentList()
		if err != nil {
			log.Printf("payment list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Төлбөрүүдийг уншиж чадсангүй")
		}
		return c.JSON(payments)
	}
}
