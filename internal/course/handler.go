package course

import (
	"log"

	"vegete-backend/internal/audit"
	"vegete-backend/internal/httputil"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
	Schedule    string `json:"schedule"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

// POST /api/courses
func CreateCourseHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCourseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		if err := httputil.ValidateStruct(body); err != nil {
			return httputil.ValidationError(c, err)
		}

		course := models.Course{
			Title:       body.Title,
			Description: body.Description,
			Icon:        body.Icon,
			Difficulty:  body.Difficulty,
			Duration:    body.Duration,
			Schedule:    body.Schedule,
			Color:       body.Color,
			SortOrder:   body.SortOrder,
			IsActive:    true,
		}
		if course.Icon == "" {
			course.Icon = "Dumbbell"
		}
		if course.Difficulty == "" {
			course.Difficulty = "Бүх түвшин"
		}
		if course.Duration == "" {
			course.Duration = "60 мин"
		}
		if course.Color == "" {
			course.Color = "hsl(0 72% 51%)"
		}

		if err := st.CreateCourse(&course); err != nil {
			log.Printf("course create failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Хичээл үүсгэж чадсангүй")
		}

		audit.Record(c, st, audit.RecordOptions{
			EntityType:  "course",
			EntityID:    course.ID,
			Action:      models.AuditActionCreate,
			Description: "Шинэ хичээл: " + course.Title,
			After:       course,
		})

		return c.Status(fiber.StatusCreated).JSON(course)
	}
}

// GET /api/courses — эрэмбэ нь SortOrder өсөхөөр.
func ListCoursesHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courses, err := st.Courses()
		if err != nil {
			log.Printf("course list failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Хичээлүүдийг уншиж чадсангүй")
		}
		return c.JSON(courses)
	}
}
