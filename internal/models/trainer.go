package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trainer struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName     string    `gorm:"size:100;not null" json:"firstName"`
	LastName      string    `gorm:"size:100;not null" json:"lastName"`
	Phone         string    `gorm:"size:50;not null" json:"phone"`
	Email         *string   `gorm:"size:255" json:"email"`
	Certification string    `gorm:"size:255;not null" json:"certification"`
	Specialty     string    `gorm:"size:255;not null" json:"specialty"`
	Bio           string    `gorm:"default:''" json:"bio"`
	BranchID      string    `gorm:"type:varchar(36);index;not null" json:"branchId"`
	Salary        float64   `gorm:"type:numeric(10,2);not null;default:1500000" json:"salary"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
