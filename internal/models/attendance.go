package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendance struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	MemberID     string     `gorm:"type:varchar(36);index;not null" json:"memberId"`
	BranchID     string     `gorm:"type:varchar(36);index;not null" json:"branchId"`
	CheckInTime  time.Time  `gorm:"not null" json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CheckInTime.IsZero() {
		a.CheckInTime = time.Now()
	}
	return nil
}
