package storage

import (
	"errors"
	"fmt"
	"time"

	"vegete-backend/internal/models"

	"gorm.io/gorm"
)

// GormStore: Store-ийн Postgres/GORM хэрэгжилт.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------------------------------------
// Users
// ---------------------------------------

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) UserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(u *models.User) error {
	if u.BranchID != nil {
		if err := s.requireBranch(*u.BranchID); err != nil {
			return err
		}
	}
	return s.db.Create(u).Error
}

func (s *GormStore) CountUsers() (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

// ---------------------------------------
// Branches
// ---------------------------------------

func (s *GormStore) Branches() ([]models.Branch, error) {
	var branches []models.Branch
	err := s.db.Find(&branches).Error
	return branches, err
}

func (s *GormStore) BranchByID(id string) (*models.Branch, error) {
	var branch models.Branch
	if err := s.db.First(&branch, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &branch, nil
}

func (s *GormStore) CreateBranch(b *models.Branch) error {
	return s.db.Create(b).Error
}

// BranchList: салбар бүр дээр гишүүд, дасгалжуулагчдын тоо болон нийт
// орлогыг салбар тус бүрийн тусдаа query-гээр тооцож хавсаргана.
// Хүснэгтүүд хэдэн зуун мөрөөс хэтрэхгүй тул N+1 нь асуудал биш.
func (s *GormStore) BranchList() ([]BranchListItem, error) {
	branches, err := s.Branches()
	if err != nil {
		return nil, err
	}
	items := make([]BranchListItem, 0, len(branches))
	for _, b := range branches {
		mc, err := s.CountMembersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		tc, err := s.CountTrainersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		rev, err := s.SumPaymentsByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, BranchListItem{
			Branch:       b,
			MemberCount:  mc,
			TrainerCount: tc,
			Revenue:      rev,
		})
	}
	return items, nil
}

func (s *GormStore) ActiveBranchList() ([]PublicBranch, error) {
	var branches []models.Branch
	if err := s.db.Where("is_active = ?", true).Find(&branches).Error; err != nil {
		return nil, err
	}
	items := make([]PublicBranch, 0, len(branches))
	for _, b := range branches {
		mc, err := s.CountMembersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		tc, err := s.CountTrainersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		features := []string(b.Features)
		if features == nil {
			features = []string{}
		}
		items = append(items, PublicBranch{
			ID:           b.ID,
			Name:         b.Name,
			Address:      b.Address,
			Phone:        b.Phone,
			City:         b.City,
			Hours:        b.Hours,
			Features:     features,
			MemberCount:  mc,
			TrainerCount: tc,
		})
	}
	return items, nil
}

func (s *GormStore) CountBranches() (int64, error) {
	var n int64
	err := s.db.Model(&models.Branch{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountActiveBranches() (int64, error) {
	var n int64
	err := s.db.Model(&models.Branch{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (s *GormStore) CountMembersByBranch(branchID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Member{}).Where("branch_id = ?", branchID).Count(&n).Error
	return n, err
}

func (s *GormStore) CountTrainersByBranch(branchID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Trainer{}).Where("branch_id = ?", branchID).Count(&n).Error
	return n, err
}

func (s *GormStore) requireBranch(id string) error {
	var n int64
	if err := s.db.Model(&models.Branch{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: салбар %s", ErrInvalidRef, id)
	}
	return nil
}

// ---------------------------------------
// Members
// ---------------------------------------

func (s *GormStore) MemberList() ([]MemberListItem, error) {
	var members []models.Member
	if err := s.db.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return s.attachBranchNames(members)
}

func (s *GormStore) RecentMembers(limit int) ([]MemberListItem, error) {
	var members []models.Member
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&members).Error; err != nil {
		return nil, err
	}
	return s.attachBranchNames(members)
}

func (s *GormStore) attachBranchNames(members []models.Member) ([]MemberListItem, error) {
	branches, err := s.Branches()
	if err != nil {
		return nil, err
	}
	ix := BranchNameIndex(branches)
	items := make([]MemberListItem, 0, len(members))
	for _, m := range members {
		items = append(items, MemberListItem{Member: m, BranchName: ix.Name(m.BranchID)})
	}
	return items, nil
}

func (s *GormStore) MemberByID(id string) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &member, nil
}

func (s *GormStore) CreateMember(m *models.Member) error {
	if err := s.requireBranch(m.BranchID); err != nil {
		return err
	}
	if m.TrainerID != nil {
		var n int64
		if err := s.db.Model(&models.Trainer{}).Where("id = ?", *m.TrainerID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: дасгалжуулагч %s", ErrInvalidRef, *m.TrainerID)
		}
	}
	return s.db.Create(m).Error
}

func (s *GormStore) CountMembers() (int64, error) {
	var n int64
	err := s.db.Model(&models.Member{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountMembersByStatus(status models.MembershipStatus) (int64, error) {
	var n int64
	err := s.db.Model(&models.Member{}).Where("membership_status = ?", status).Count(&n).Error
	return n, err
}

func (s *GormStore) CountMembersByTrainer(trainerID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Member{}).Where("trainer_id = ?", trainerID).Count(&n).Error
	return n, err
}

func (s *GormStore) MembersByType() ([]GroupCount, error) {
	var rows []GroupCount
	err := s.db.Model(&models.Member{}).
		Select("membership_type AS grp, COUNT(*) AS cnt").
		Group("membership_type").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) MembersByStatus() ([]GroupCount, error) {
	var rows []GroupCount
	err := s.db.Model(&models.Member{}).
		Select("membership_status AS grp, COUNT(*) AS cnt").
		Group("membership_status").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) AverageActiveMonthlyFee() (float64, error) {
	var avg float64
	err := s.db.Model(&models.Member{}).
		Where("membership_status = ?", models.StatusActive).
		Select("COALESCE(AVG(monthly_fee), 0)").
		Scan(&avg).Error
	return avg, err
}

// ---------------------------------------
// Trainers
// ---------------------------------------

func (s *GormStore) Trainers() ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := s.db.Find(&trainers).Error
	return trainers, err
}

func (s *GormStore) TrainerList() ([]TrainerListItem, error) {
	var trainers []models.Trainer
	if err := s.db.Order("created_at DESC").Find(&trainers).Error; err != nil {
		return nil, err
	}
	branches, err := s.Branches()
	if err != nil {
		return nil, err
	}
	ix := BranchNameIndex(branches)
	items := make([]TrainerListItem, 0, len(trainers))
	for _, t := range trainers {
		mc, err := s.CountMembersByTrainer(t.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, TrainerListItem{
			Trainer:     t,
			BranchName:  ix.Name(t.BranchID),
			MemberCount: mc,
		})
	}
	return items, nil
}

func (s *GormStore) ActiveTrainerList() ([]PublicTrainer, error) {
	var trainers []models.Trainer
	if err := s.db.Where("is_active = ?", true).Find(&trainers).Error; err != nil {
		return nil, err
	}
	branches, err := s.Branches()
	if err != nil {
		return nil, err
	}
	ix := BranchNameIndex(branches)
	items := make([]PublicTrainer, 0, len(trainers))
	for _, t := range trainers {
		items = append(items, PublicTrainer{
			ID:            t.ID,
			FirstName:     t.FirstName,
			LastName:      t.LastName,
			Specialty:     t.Specialty,
			Certification: t.Certification,
			Bio:           t.Bio,
			BranchName:    ix.Name(t.BranchID),
		})
	}
	return items, nil
}

func (s *GormStore) TrainerByID(id string) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := s.db.First(&trainer, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &trainer, nil
}

func (s *GormStore) CreateTrainer(t *models.Trainer) error {
	if err := s.requireBranch(t.BranchID); err != nil {
		return err
	}
	return s.db.Create(t).Error
}

func (s *GormStore) CountTrainers() (int64, error) {
	var n int64
	err := s.db.Model(&models.Trainer{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountActiveTrainers() (int64, error) {
	var n int64
	err := s.db.Model(&models.Trainer{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// ---------------------------------------
// Courses
// ---------------------------------------

func (s *GormStore) Courses() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Order("sort_order ASC").Find(&courses).Error
	return courses, err
}

func (s *GormStore) ActiveCourses() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&courses).Error
	return courses, err
}

func (s *GormStore) CountActiveCourses() (int64, error) {
	var n int64
	err := s.db.Model(&models.Course{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

// ---------------------------------------
// Payments
// ---------------------------------------

func (s *GormStore) PaymentList() ([]PaymentListItem, error) {
	var payments []models.Payment
	if err := s.db.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	var members []models.Member
	if err := s.db.Find(&members).Error; err != nil {
		return nil, err
	}
	branches, err := s.Branches()
	if err != nil {
		return nil, err
	}
	memberIx := MemberNameIndex(members)
	branchIx := BranchNameIndex(branches)
	items := make([]PaymentListItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, PaymentListItem{
			Payment:    p,
			MemberName: memberIx.Name(p.MemberID),
			BranchName: branchIx.Name(p.BranchID),
		})
	}
	return items, nil
}

// CreatePayment: BranchID-г гишүүний одоогийн салбараас хуулна. Клиентээс
// ирсэн утгыг үл хэрэгсэнэ — төлбөр нь үүсэх үеийн салбартаа бичигдэнэ.
func (s *GormStore) CreatePayment(p *models.Payment) error {
	member, err := s.MemberByID(p.MemberID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: гишүүн %s", ErrInvalidRef, p.MemberID)
		}
		return err
	}
	p.BranchID = member.BranchID
	return s.db.Create(p).Error
}

func (s *GormStore) SumPayments() (float64, error) {
	var total float64
	err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormStore) SumPaymentsByBranch(branchID string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Payment{}).
		Where("branch_id = ?", branchID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormStore) SumPaymentsForMonth(month string, year int) (float64, error) {
	var total float64
	err := s.db.Model(&models.Payment{}).
		Where("month = ? AND year = ?", month, year).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// ---------------------------------------
// Attendance
// ---------------------------------------

func (s *GormStore) CreateAttendance(a *models.Attendance) error {
	member, err := s.MemberByID(a.MemberID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: гишүүн %s", ErrInvalidRef, a.MemberID)
		}
		return err
	}
	a.BranchID = member.BranchID
	return s.db.Create(a).Error
}

func (s *GormStore) CloseAttendance(id string) (*models.Attendance, error) {
	var att models.Attendance
	if err := s.db.First(&att, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	now := time.Now()
	att.CheckOutTime = &now
	if err := s.db.Save(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (s *GormStore) AttendanceByMember(memberID string) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.db.Where("member_id = ?", memberID).Order("check_in_time DESC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) CountAttendance() (int64, error) {
	var n int64
	err := s.db.Model(&models.Attendance{}).Count(&n).Error
	return n, err
}

// ---------------------------------------
// Performance records
// ---------------------------------------

func (s *GormStore) CreatePerformanceRecord(rec *models.PerformanceRecord) error {
	var n int64
	if err := s.db.Model(&models.Member{}).Where("id = ?", rec.MemberID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: гишүүн %s", ErrInvalidRef, rec.MemberID)
	}
	return s.db.Create(rec).Error
}

func (s *GormStore) PerformanceByMember(memberID string) ([]models.PerformanceRecord, error) {
	var rows []models.PerformanceRecord
	err := s.db.Where("member_id = ?", memberID).Order("record_date DESC").Find(&rows).Error
	return rows, err
}

// ---------------------------------------
// Audit
// ---------------------------------------

func (s *GormStore) CreateAuditLog(l *models.AuditLog) error {
	return s.db.Create(l).Error
}

func (s *GormStore) AuditLogs() ([]models.AuditLog, error) {
	var rows []models.AuditLog
	err := s.db.Order("created_at DESC").Limit(200).Find(&rows).Error
	return rows, err
}
