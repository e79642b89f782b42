package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Branch struct {
	ID            string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Address       string         `gorm:"size:255;not null" json:"address"`
	Phone         string         `gorm:"size:50;not null" json:"phone"`
	City          string         `gorm:"size:100;not null;default:Улаанбаатар" json:"city"`
	Country       string         `gorm:"size:100;not null;default:Монгол" json:"country"`
	OperatingCost float64        `gorm:"type:numeric(12,2);not null;default:5000000" json:"operatingCost"`
	Hours         string         `gorm:"not null;default:''" json:"hours"` // free text, e.g. "Даваа - Баасан: 06:00 - 22:00"
	Features      pq.StringArray `gorm:"type:text[]" json:"features"`
	IsActive      bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
