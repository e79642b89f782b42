package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course: хичээлийн хөтөлбөр. SortOrder нь нийтийн хуудсан дээрх дарааллыг тодорхойлно.
type Course struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Icon        string    `gorm:"size:50;not null;default:Dumbbell" json:"icon"`
	Difficulty  string    `gorm:"size:100;not null;default:Бүх түвшин" json:"difficulty"`
	Duration    string    `gorm:"size:50;not null;default:60 мин" json:"duration"`
	Schedule    string    `gorm:"size:255;not null;default:''" json:"schedule"`
	Color       string    `gorm:"size:50;not null;default:hsl(0 72% 51%)" json:"color"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
