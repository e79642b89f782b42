package admin

import (
	"errors"
	"log"
	"strings"

	"vegete-backend/internal/audit"
	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreateBranchRequest struct {
	Name          string   `json:"name" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Phone         string   `json:"phone" validate:"required"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	OperatingCost float64  `json:"operatingCost" validate:"gte=0"`
	Hours         string   `json:"hours"`
	Features      []string `json:"features"`
}

// POST /api/branches
func CreateBranchHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		body.Name = strings.TrimSpace(body.Name)
		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		branch := models.Branch{
			Name:          body.Name,
			Address:       body.Address,
			Phone:         body.Phone,
			City:          body.City,
			Country:       body.Country,
			OperatingCost: body.OperatingCost,
			Hours:         body.Hours,
			Features:      body.Features,
			IsActive:      true,
		}
		if branch.City == "" {
			branch.City = "Улаанбаатар"
		}
		if branch.Country == "" {
			branch.Country = "Монгол"
		}

		if err := st.CreateBranch(&branch); err != nil {
			log.Printf("branch create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Салбар үүсгэж чадсангүй")
		}

		audit.Record(c, st, audit.RecordOptions{
			EntityType:  "branch",
			EntityID:    branch.ID,
			Action:      models.AuditActionCreate,
			Description: "Шинэ салбар: " + branch.Name,
			After:       branch,
		})

		return c.Status(fiber.StatusCreated).JSON(branch)
	}
}

// GET /api/branches
func ListBranchesHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := st.BranchList()
		if err != nil {
			log.Printf("branch list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Салбаруудыг уншиж чадсангүй")
		}
		return c.JSON(branches)
	}
}

// GET /api/branches/:id
func GetBranchHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := st.BranchByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Салбар олдсонгүй")
			}
			log.Printf("branch get failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Салбарыг уншиж чадсангүй")
		}
		return c.JSON(branch)
	}
}
