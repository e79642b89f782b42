package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PerformanceRecord struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MemberID   string    `gorm:"type:varchar(36);index;not null" json:"memberId"`
	RecordDate time.Time `gorm:"type:date;not null;default:CURRENT_DATE" json:"recordDate"`
	Weight     *float64  `gorm:"type:numeric(5,1)" json:"weight"`
	BenchPress *float64  `gorm:"type:numeric(5,1)" json:"benchPress"`
	Squat      *float64  `gorm:"type:numeric(5,1)" json:"squat"`
	Deadlift   *float64  `gorm:"type:numeric(5,1)" json:"deadlift"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *PerformanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.RecordDate.IsZero() {
		r.RecordDate = time.Now()
	}
	return nil
}
