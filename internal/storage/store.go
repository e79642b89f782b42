package storage

import (
	"errors"

	"vegete-backend/internal/models"
)

var (
	// ErrNotFound: хүссэн мөр олдсонгүй.
	ErrNotFound = errors.New("бичлэг олдсонгүй")
	// ErrInvalidRef: заасан гадаад түлхүүр (салбар, дасгалжуулагч, гишүүн) байхгүй.
	ErrInvalidRef = errors.New("холбогдох бичлэг байхгүй")
)

// MemberListItem: гишүүний мөр + салбарын нэр.
type MemberListItem struct {
	models.Member
	BranchName string `json:"branchName"`
}

// TrainerListItem: дасгалжуулагчийн мөр + салбарын нэр, хариуцсан гишүүдийн тоо.
type TrainerListItem struct {
	models.Trainer
	BranchName  string `json:"branchName"`
	MemberCount int64  `json:"memberCount"`
}

// BranchListItem: салбарын мөр + гишүүд, дасгалжуулагчдын тоо, нийт орлого.
type BranchListItem struct {
	models.Branch
	MemberCount  int64   `json:"memberCount"`
	TrainerCount int64   `json:"trainerCount"`
	Revenue      float64 `json:"revenue"`
}

// PaymentListItem: төлбөрийн мөр + гишүүн, салбарын нэр.
type PaymentListItem struct {
	models.Payment
	MemberName string `json:"memberName"`
	BranchName string `json:"branchName"`
}

// PublicBranch: нийтийн сайтад харагдах салбарын хураангуй.
type PublicBranch struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	Hours        string   `json:"hours"`
	Features     []string `json:"features"`
	MemberCount  int64    `json:"memberCount"`
	TrainerCount int64    `json:"trainerCount"`
}

// PublicTrainer: нийтийн сайтад харагдах дасгалжуулагчийн хураангуй.
type PublicTrainer struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Specialty     string `json:"specialty"`
	Certification string `json:"certification"`
	Bio           string `json:"bio"`
	BranchName    string `json:"branchName"`
}

// GroupCount: GROUP BY үр дүнгийн нэг мөр.
type GroupCount struct {
	Key   string `gorm:"column:grp" json:"key"`
	Count int64  `gorm:"column:cnt" json:"count"`
}

// Store: хадгалалтын давхаргын гэрээ. Репортын хөдөлгүүр болон HTTP
// handler-ууд зөвхөн үүгээр дамжиж өгөгдөлд ханддаг.
type Store interface {
	// users
	UserByUsername(username string) (*models.User, error)
	UserByID(id string) (*models.User, error)
	CreateUser(u *models.User) error
	CountUsers() (int64, error)

	// branches
	Branches() ([]models.Branch, error)
	BranchByID(id string) (*models.Branch, error)
	CreateBranch(b *models.Branch) error
	BranchList() ([]BranchListItem, error)
	ActiveBranchList() ([]PublicBranch, error)
	CountBranches() (int64, error)
	CountActiveBranches() (int64, error)
	CountMembersByBranch(branchID string) (int64, error)
	CountTrainersByBranch(branchID string) (int64, error)

	// members
	MemberList() ([]MemberListItem, error)
	RecentMembers(limit int) ([]MemberListItem, error)
	MemberByID(id string) (*models.Member, error)
	CreateMember(m *models.Member) error
	CountMembers() (int64, error)
	CountMembersByStatus(status models.MembershipStatus) (int64, error)
	CountMembersByTrainer(trainerID string) (int64, error)
	MembersByType() ([]GroupCount, error)
	MembersByStatus() ([]GroupCount, error)
	AverageActiveMonthlyFee() (float64, error)

	// trainers
	Trainers() ([]models.Trainer, error)
	ActiveTrainerList() ([]PublicTrainer, error)
	TrainerByID(id string) (*models.Trainer, error)
	CreateTrainer(t *models.Trainer) error
	TrainerList() ([]TrainerListItem, error)
	CountTrainers() (int64, error)
	CountActiveTrainers() (int64, error)

	// courses
	Courses() ([]models.Course, error)
	ActiveCourses() ([]models.Course, error)
	CountActiveCourses() (int64, error)
	CreateCourse(course *models.Course) error

	// payments
	PaymentList() ([]PaymentListItem, error)
	CreatePayment(p *models.Payment) error
	SumPayments() (float64, error)
	SumPaymentsByBranch(branchID string) (float64, error)
	SumPaymentsForMonth(month string, year int) (float64, error)

	// attendance
	CreateAttendance(a *models.Attendance) error
	CloseAttendance(id string) (*models.Attendance, error)
	AttendanceByMember(memberID string) ([]models.Attendance, error)
	CountAttendance() (int64, error)

	// performance records
	CreatePerformanceRecord(rec *models.PerformanceRecord) error
	PerformanceByMember(memberID string) ([]models.PerformanceRecord, error)

	// audit
	CreateAuditLog(l *models.AuditLog) error
	AuditLogs() ([]models.AuditLog, error)
}
