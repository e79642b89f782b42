package main

import (
	"log"
	"strings"

	"vegete-backend/internal/admin"
	"vegete-backend/internal/attendance"
	"vegete-backend/internal/audit"
	"vegete-backend/internal/auth"
	"vegete-backend/internal/billing"
	"vegete-backend/internal/config"
	"vegete-backend/internal/course"
	"vegete-backend/internal/dashboard"
	"vegete-backend/internal/database"
	"vegete-backend/internal/membership"
	"vegete-backend/internal/models"
	"vegete-backend/internal/publicsite"
	"vegete-backend/internal/reporting"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)
	database.Seed()

	st := storage.New(database.DB)
	engine := reporting.NewEngine(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Серверийн алдаа",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Нийтийн сайт + нэвтрэлт
	api.Post("/auth/login", auth.LoginHandler(cfg, st))
	api.Get("/public/branches", publicsite.BranchesHandler(st))
	api.Get("/public/trainers", publicsite.TrainersHandler(st))
	api.Get("/public/courses", publicsite.CoursesHandler(st))
	api.Get("/public/stats", publicsite.StatsHandler(engine))
	api.Post("/contact", publicsite.ContactHandler())

	// Админ тал (JWT шаардана)
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))

	// Салбар
	protected.Get("/branches", admin.ListBranchesHandler(st))
	protected.Post("/branches", admin.CreateBranchHandler(st))
	protected.Get("/branches/:id", admin.GetBranchHandler(st))

	// Гишүүд
	protected.Get("/members", membership.ListMembersHandler(st))
	protected.Post("/members", membership.CreateMemberHandler(st))
	protected.Get("/members/:id", membership.GetMemberHandler(st))
	protected.Get("/members/:id/attendance", attendance.MemberAttendanceHandler(st))
	protected.Get("/members/:id/performance", attendance.MemberPerformanceHandler(st))

	// Дасгалжуулагчид
	protected.Get("/trainers", membership.ListTrainersHandler(st))
	protected.Post("/trainers", membership.CreateTrainerHandler(st))
	protected.Get("/trainers/:id", membership.GetTrainerHandler(st))

	// Хичээлүүд
	protected.Get("/courses", course.ListCoursesHandler(st))
	protected.Post("/courses", course.CreateCourseHandler(st))

	// Төлбөр
	protected.Get("/payments", billing.ListPaymentsHandler(st))
	protected.Post("/payments", billing.CreatePaymentHandler(st))

	// Ирц ба үзүүлэлт
	protected.Post("/attendance/check-in", attendance.CheckInHandler(st))
	protected.Post("/attendance/:id/check-out", attendance.CheckOutHandler(st))
	protected.Post("/performance-records", attendance.CreatePerformanceHandler(st))

	// Тайлан
	protected.Get("/dashboard/stats", dashboard.StatsHandler(engine))
	protected.Get("/analytics", dashboard.AnalyticsHandler(engine))

	// Зөвхөн super_admin
	adminOnly := protected.Group("")
	adminOnly.Use(auth.RequireRole(models.RoleSuperAdmin))
	adminOnly.Get("/investor", dashboard.InvestorHandler(engine))
	adminOnly.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
