package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment: нэг удаагийн төлбөрийн бичилт. Үүссэнийхээ дараа өөрчлөгдөхгүй.
// BranchID нь гишүүний тухайн үеийн салбараас хуулагдана; гишүүн дараа нь
// салбар солиход буцааж тооцохгүй.
type Payment struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MemberID    string    `gorm:"type:varchar(36);index;not null" json:"memberId"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null;default:CURRENT_DATE" json:"paymentDate"`
	Month       string    `gorm:"size:2;not null" json:"month"` // "1".."12"
	Year        int       `gorm:"not null" json:"year"`
	BranchID    string    `gorm:"type:varchar(36);index;not null" json:"branchId"`
	Status      string    `gorm:"size:20;not null;default:paid" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return nil
}
