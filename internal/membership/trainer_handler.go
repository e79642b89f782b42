package membership

import (
	"errors"
	"log"

	"vegete-backend/internal/audit"
	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreateTrainerRequest struct {
	FirstName     string  `json:"firstName" validate:"required"`
	LastName      string  `json:"lastName" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Certification string  `json:"certification" validate:"required"`
	Specialty     string  `json:"specialty" validate:"required"`
	Bio           string  `json:"bio"`
	BranchID      string  `json:"branchId" validate:"required"`
	Salary        float64 `json:"salary" validate:"gte=0"`
}

// POST /api/trainers
func CreateTrainerHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTrainerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		trainer := models.Trainer{
			FirstName:     body.FirstName,
			LastName:      body.LastName,
			Phone:         body.Phone,
			Email:         body.Email,
			Certification: body.Certification,
			Specialty:     body.Specialty,
			Bio:           body.Bio,
			BranchID:      body.BranchID,
			Salary:        body.Salary,
			IsActive:      true,
		}
		if trainer.Salary == 0 {
			trainer.Salary = 1500000
		}

		if err := st.CreateTrainer(&trainer); err != nil {
			if errors.Is(err, storage.ErrInvalidRef) {
				return fiber.NewError(fiber.StatusBadRequest, "Заасан салбар байхгүй")
			}
			log.Printf("trainer create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Дасгалжуулагч үүсгэж чадсангүй")
		}

		audit.Record(c, st, audit.RecordOptions{
			EntityType:  "trainer",
			EntityID:    trainer.ID,
			Action:      models.AuditActionCreate,
			Description: "Шинэ дасгалжуулагч: " + trainer.LastName + " " + trainer.FirstName,
			After:       trainer,
		})

		return c.Status(fiber.StatusCreated).JSON(trainer)
	}
}

// GET /api/trainers
func ListTrainersHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trainers, err := st.TrainerList()
		if err != nil {
			log.Printf("trainer list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Дасгалжуулагчдыг уншиж чадсангүй")
		}
		return c.JSON(trainers)
	}
}

// GET /api/trainers/:id
func GetTrainerHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trainer, err := st.TrainerByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Дасгалжуулагч олдсонгүй")
			}
			log.Printf("trainer get failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Дасгалжуулагчийг уншиж чадсангүй")
		}
		return c.JSON(trainer)
	}
}
