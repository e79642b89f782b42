package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
)

// AuditLog: админ талын бичилт бүрийн мөр. AfterData нь үүссэн мөрийн JSON хувилбар.
type AuditLog struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string      `gorm:"type:varchar(36);index;not null" json:"userId"`
	UserName    string      `gorm:"size:100;not null" json:"userName"`
	EntityType  string      `gorm:"size:50;index;not null" json:"entityType"`
	EntityID    string      `gorm:"type:varchar(36);not null" json:"entityId"`
	Action      AuditAction `gorm:"size:20;not null" json:"action"`
	Description string      `gorm:"size:255" json:"description"`
	AfterData   string      `gorm:"type:jsonb;default:'null'" json:"afterData"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
