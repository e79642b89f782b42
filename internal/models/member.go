package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipAthlete MembershipType = "athlete"
)

type MembershipStatus string

const (
	StatusActive    MembershipStatus = "active"
	StatusSuspended MembershipStatus = "suspended"
	StatusExpired   MembershipStatus = "expired"
)

type Member struct {
	ID               string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName        string           `gorm:"size:100;not null" json:"firstName"`
	LastName         string           `gorm:"size:100;not null" json:"lastName"`
	Email            *string          `gorm:"size:255" json:"email"`
	Phone            string           `gorm:"size:50;not null" json:"phone"`
	MembershipType   MembershipType   `gorm:"size:20;not null;default:basic" json:"membershipType"`
	MembershipStatus MembershipStatus `gorm:"size:20;not null;default:active" json:"membershipStatus"`
	MonthlyFee       float64          `gorm:"type:numeric(10,2);not null;default:150000" json:"monthlyFee"`
	BranchID         string           `gorm:"type:varchar(36);index;not null" json:"branchId"`
	TrainerID        *string          `gorm:"type:varchar(36);index" json:"trainerId"`
	JoinDate         time.Time        `gorm:"type:date;not null;default:CURRENT_DATE" json:"joinDate"`
	Weight           *float64         `gorm:"type:numeric(5,1)" json:"weight"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = time.Now()
	}
	return nil
}
