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

type CreateMemberRequest struct {
	FirstName        string   `json:"firstName" validate:"required"`
	LastName         string   `json:"lastName" validate:"required"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Phone            string   `json:"phone" validate:"required"`
	MembershipType   string   `json:"membershipType" validate:"omitempty,oneof=basic premium athlete"`
	MembershipStatus string   `json:"membershipStatus" validate:"omitempty,oneof=active suspended expired"`
	MonthlyFee       float64  `json:"monthlyFee" validate:"gte=0"`
	BranchID         string   `json:"branchId" validate:"required"`
	TrainerID        *string  `json:"trainerId"`
	Weight           *float64 `json:"weight"`
}

// POST /api/members
func CreateMemberHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMemberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		member := models.Member{
			FirstName:        body.FirstName,
			LastName:         body.LastName,
			Email:            body.Email,
			Phone:            body.Phone,
			MembershipType:   models.MembershipType(body.MembershipType),
			MembershipStatus: models.MembershipStatus(body.MembershipStatus),
			MonthlyFee:       body.MonthlyFee,
			BranchID:         body.BranchID,
			TrainerID:        body.TrainerID,
			Weight:           body.Weight,
		}
		if member.MembershipType == "" {
			member.MembershipType = models.MembershipBasic
		}
		if member.MembershipStatus == "" {
			member.MembershipStatus = models.StatusActive
		}
		if member.MonthlyFee == 0 {
			member.MonthlyFee = 150000
		}

		if err := st.CreateMember(&member); err != nil {
			if errors.Is(err, storage.ErrInvalidRef) {
				return fiber.NewError(fiber.StatusBadRequest, "Заасан салбар эсвэл дасгалжуулагч байхгүй")
			}
			log.Printf("member create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Гишүүн үүсгэж чадсангүй")
		}

		audit.Record(c, st, audit.RecordOptions{
			EntityType:  "member",
			EntityID:    member.ID,
			Action:      models.AuditActionCreate,
			Description: "Шинэ гишүүн: " + member.LastName + " " + member.FirstName,
			After:       member,
		})

		return c.Status(fiber.StatusCreated).JSON(member)
	}
}

// GET /api/members
func ListMembersHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := st.MemberList()
		if err != nil {
			log.Printf("member list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Гишүүдийг уншиж чадсангүй")
		}
		return c.JSON(members)
	}
}

// GET /api/members/:id
func GetMemberHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		member, err := st.MemberByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Гишүүн олдсонгүй")
			}
			log.Printf("member get failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Гишүүнийг уншиж чадсангүй")
		}
		return c.JSON(member)
	}
}
