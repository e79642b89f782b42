package httputil

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct: хүсэлтийн DTO-г validate tag-уудынх нь дагуу шалгана.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError: validator-ийн алдааг талбар бүрийн дэлгэрэнгүйтэй
// 400 хариу болгон хөрвүүлнэ.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fiber.NewError(fiber.StatusBadRequest, "Буруу мэдээлэл")
	}

	details := make(map[string]string, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = fe.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Буруу мэдээлэл",
		"details": details,
	})
}
