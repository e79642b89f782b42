package audit

import (
	"encoding/json"
	"log"

	"vegete-backend/internal/auth"
	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type RecordOptions struct {
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	After       any
}

// Record: админ үйлдлийг аудитын хүснэгтэд бичнэ. Үйлдэгчийг JWT claims-аас
// авна. Аудит бичиж чадаагүй нь үндсэн үйлдлийг унагахгүй — зөвхөн log хийнэ.
func Record(c *fiber.Ctx, st storage.Store, opts RecordOptions) {
	afterStr := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	userID, _ := c.Locals(auth.CtxUserIDKey).(string)
	userName, _ := c.Locals(auth.CtxUsernameKey).(string)

	l := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		AfterData:   afterStr,
	}

	if err := st.CreateAuditLog(&l); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}
