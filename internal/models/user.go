package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin    UserRole = "super_admin"
	RoleBranchManager UserRole = "branch_manager"
	RoleTrainer       UserRole = "trainer"
	RoleViewer        UserRole = "viewer"
)

type User struct {
	ID        string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username  string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string   `gorm:"size:255;not null" json:"-"` // bcrypt hash
	FullName  string   `gorm:"size:100;not null" json:"fullName"`
	Role      UserRole `gorm:"size:20;not null;default:viewer" json:"role"`
	BranchID  *string  `gorm:"type:varchar(36)" json:"branchId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
