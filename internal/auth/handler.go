package auth

import (
	"errors"
	"strings"

	"vegete-backend/internal/config"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Нэвтрэлт амжилтгүй болсон бүх тохиолдолд нэг ижил хариу. Хэрэглэгч
// байхгүй юу, нууц үг буруу юу гэдгийг ялгаж мэдэгдэхгүй.
const loginFailedMessage = "Хэрэглэгчийн нэр эсвэл нууц үг буруу"

func LoginHandler(cfg *config.Config, st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Хүсэлтийн агуулга буруу")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Хэрэглэгчийн нэр, нууц үг шаардлагатай")
		}

		user, err := st.UserByUsername(body.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, loginFailedMessage)
			}
			return err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, loginFailedMessage)
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token үүсгэж чадсангүй")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"fullName": user.FullName,
				"role":     user.Role,
				"branchId": user.BranchID,
			},
		})
	}
}

func MeHandler(st storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(CtxUserIDKey).(string)
		if !ok || userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Хэрэглэгчийн мэдээлэл олдсонгүй")
		}

		user, err := st.UserByID(userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Хэрэглэгч олдсонгүй")
			}
			return err
		}

		response := fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"fullName": user.FullName,
			"role":     user.Role,
			"branchId": user.BranchID,
		}

		// Салбарын менежер бол салбарынх нь мэдээллийг хавсаргана.
		if user.BranchID != nil {
			if branch, err := st.BranchByID(*user.BranchID); err == nil {
				response["branch"] = fiber.Map{
					"id":      branch.ID,
					"name":    branch.Name,
					"address": branch.Address,
					"phone":   branch.Phone,
				}
			}
		}

		return c.JSON(response)
	}
}

// HashPassword: bcrypt-ээр нууц үг hash-лана. Seed болон хэрэглэгч үүсгэхэд
// хэрэглэнэ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
