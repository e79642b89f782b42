package publicsite

import (
	"log"
	"strings"

	"vegete-backend/internal/reporting"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Нийтийн маркетингийн сайтын endpoint-ууд. Нэвтрэлт шаардахгүй,
// зөвхөн идэвхтэй мөрүүдийг буцаана.

// GET /api/public/branches
func BranchesHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := st.ActiveBranchList()
		if err != nil {
			log.Printf("public branches failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Салбаруудыг уншиж чадсангүй")
		}
		return c.JSON(branches)
	}
}

// GET /api/public/trainers
func TrainersHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trainers, err := st.ActiveTrainerList()
		if err != nil {
			log.Printf("public trainers failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Дасгалжуулагчдыг уншиж чадсангүй")
		}
		return c.JSON(trainers)
	}
}

// GET /api/public/courses
func CoursesHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courses, err := st.ActiveCourses()
		if err != nil {
			log.Printf("public courses failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Хичээлүүдийг уншиж чадсангүй")
		}
		return c.JSON(courses)
	}
}

// GET /api/public/stats
func StatsHandler(engine *reporting.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := engine.PublicStats()
		if err != nil {
			log.Printf("public stats failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Тоо баримт гарсангүй")
		}
		return c.JSON(stats)
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /api/contact — маягтыг зөвхөн сервер талд log хийнэ.
func ContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ContactRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" || strings.TrimSpace(body.Message) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Шаардлагатай талбаруудыг бөглөнө үү")
		}

		log.Printf("Contact form submission: name=%s email=%s phone=%s", body.Name, body.Email, body.Phone)
		return c.JSON(fiber.Map{"success": true})
	}
}
