package reporting

import (
	"strconv"

	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"
)

// Тайлангийн тогтмолууд. ReportingYear нь сарын цувааг бүлэглэх тогтсон
// календарийн жил бөгөөд өнөөдрийн огнооноос хамаарахгүй.
const (
	ReportingYear     = 2026
	InitialInvestment = 500000000
	// Идэвхтэй гишүүнгүй үед сарын орлогын тооцоонд хэрэглэх үндсэн төлбөр.
	DefaultMonthlyFee = 150000
)

var monthLabels = [12]string{
	"1-р сар", "2-р сар", "3-р сар", "4-р сар", "5-р сар", "6-р сар",
	"7-р сар", "8-р сар", "9-р сар", "10-р сар", "11-р сар", "12-р сар",
}

var typeLabels = map[string]string{
	string(models.MembershipBasic):   "Энгийн",
	string(models.MembershipPremium): "Премиум",
	string(models.MembershipAthlete): "Тамирчин",
}

var statusLabels = map[string]string{
	string(models.StatusActive):    "Идэвхтэй",
	string(models.StatusSuspended): "Түр зогсоосон",
	string(models.StatusExpired):   "Хугацаа дууссан",
}

// Store: тайлангийн хөдөлгүүрт хэрэгтэй query-нүүд. storage.GormStore
// үүнийг бүрэн хангадаг.
type Store interface {
	CountMembers() (int64, error)
	CountMembersByStatus(status models.MembershipStatus) (int64, error)
	CountTrainers() (int64, error)
	CountBranches() (int64, error)
	MembersByType() ([]storage.GroupCount, error)
	MembersByStatus() ([]storage.GroupCount, error)
	Branches() ([]models.Branch, error)
	CountMembersByBranch(branchID string) (int64, error)
	CountTrainersByBranch(branchID string) (int64, error)
	RecentMembers(limit int) ([]storage.MemberListItem, error)
	Trainers() ([]models.Trainer, error)
	SumPayments() (float64, error)
	SumPaymentsByBranch(branchID string) (float64, error)
	SumPaymentsForMonth(month string, year int) (float64, error)
	AverageActiveMonthlyFee() (float64, error)
	CountAttendance() (int64, error)
	CountActiveTrainers() (int64, error)
	CountActiveBranches() (int64, error)
	CountActiveCourses() (int64, error)
}

var _ Store = (*storage.GormStore)(nil)

// Engine: хадгалалтын давхаргын query-нүүдийг гурван хураангуй болгон
// угсарна. Кэш байхгүй — дуудлага бүрд шинээр тооцно.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type BranchStat struct {
	Name     string `json:"name"`
	Members  int64  `json:"members"`
	Trainers int64  `json:"trainers"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type BranchRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type MonthPnL struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

type BranchProfit struct {
	Name   string  `json:"name"`
	Profit float64 `json:"profit"`
}

type DashboardStats struct {
	TotalMembers        int64                    `json:"totalMembers"`
	ActiveMembers       int64                    `json:"activeMembers"`
	TotalTrainers       int64                    `json:"totalTrainers"`
	TotalBranches       int64                    `json:"totalBranches"`
	MembershipBreakdown []TypeCount              `json:"membershipBreakdown"`
	BranchStats         []BranchStat             `json:"branchStats"`
	MonthlyRevenue      []MonthRevenue           `json:"monthlyRevenue"`
	RecentMembers       []storage.MemberListItem `json:"recentMembers"`
}

type Analytics struct {
	TotalRevenue        float64        `json:"totalRevenue"`
	ActiveMembers       int64          `json:"activeMembers"`
	TotalMembers        int64          `json:"totalMembers"`
	MonthlyAttendance   int64          `json:"monthlyAttendance"`
	AvgRevenuePerMember float64        `json:"avgRevenuePerMember"`
	MonthlyTrend        []MonthRevenue `json:"monthlyTrend"`
	BranchRevenue       []BranchRevenue `json:"branchRevenue"`
	StatusBreakdown     []StatusCount  `json:"statusBreakdown"`
}

type InvestorStats struct {
	AnnualRevenue        float64        `json:"annualRevenue"`
	OperatingCost        float64        `json:"operatingCost"`
	AnnualProfit         float64        `json:"annualProfit"`
	ROI                  float64        `json:"roi"`
	InitialInvestment    float64        `json:"initialInvestment"`
	MonthlyRevenue       float64        `json:"monthlyRevenue"`
	MonthlyPnL           []MonthPnL     `json:"monthlyPnL"`
	BranchProfitability  []BranchProfit `json:"branchProfitability"`
}

type PublicStats struct {
	ActiveMembers int64 `json:"activeMembers"`
	TotalTrainers int64 `json:"totalTrainers"`
	TotalBranches int64 `json:"totalBranches"`
	WeeklyCourses int64 `json:"weeklyCourses"`
}

// monthlySeries: тайлангийн жилийн 12 сарын орлогын цуваа. Төлбөргүй сар
// 0 утгатай мөрөөр орно — мөр алгасахгүй.
func (e *Engine) monthlySeries() ([]MonthRevenue, error) {
	series := make([]MonthRevenue, 0, 12)
	for i := 0; i < 12; i++ {
		m := strconv.Itoa(i + 1)
		rev, err := e.store.SumPaymentsForMonth(m, ReportingYear)
		if err != nil {
			return nil, err
		}
		series = append(series, MonthRevenue{Month: monthLabels[i], Revenue: rev})
	}
	return series, nil
}

func labelFor(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func (e *Engine) DashboardStats() (*DashboardStats, error) {
	totalMembers, err := e.store.CountMembers()
	if err != nil {
		return nil, err
	}
	activeMembers, err := e.store.CountMembersByStatus(models.StatusActive)
	if err != nil {
		return nil, err
	}
	totalTrainers, err := e.store.CountTrainers()
	if err != nil {
		return nil, err
	}
	totalBranches, err := e.store.CountBranches()
	if err != nil {
		return nil, err
	}

	byType, err := e.store.MembersByType()
	if err != nil {
		return nil, err
	}
	// Бүлэглэлтийн буцаасан дарааллаар нь үлдээнэ, эрэмбэлэхгүй.
	breakdown := make([]TypeCount, 0, len(byType))
	for _, g := range byType {
		breakdown = append(breakdown, TypeCount{Type: labelFor(typeLabels, g.Key), Count: g.Count})
	}

	branches, err := e.store.Branches()
	if err != nil {
		return nil, err
	}
	branchStats := make([]BranchStat, 0, len(branches))
	for _, b := range branches {
		mc, err := e.store.CountMembersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		tc, err := e.store.CountTrainersByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		branchStats = append(branchStats, BranchStat{Name: b.Name, Members: mc, Trainers: tc})
	}

	series, err := e.monthlySeries()
	if err != nil {
		return nil, err
	}

	recent, err := e.store.RecentMembers(5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalMembers:        totalMembers,
		ActiveMembers:       activeMembers,
		TotalTrainers:       totalTrainers,
		TotalBranches:       totalBranches,
		MembershipBreakdown: breakdown,
		BranchStats:         branchStats,
		MonthlyRevenue:      series,
		RecentMembers:       recent,
	}, nil
}

func (e *Engine) Analytics() (*Analytics, error) {
	totalMembers, err := e.store.CountMembers()
	if err != nil {
		return nil, err
	}
	activeMembers, err := e.store.CountMembersByStatus(models.StatusActive)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := e.store.SumPayments()
	if err != nil {
		return nil, err
	}

	avgRevenue := 0.0
	if totalMembers > 0 {
		avgRevenue = totalRevenue / float64(totalMembers)
	}

	// Нэр нь "сарын" ч бодит утга нь бүх цагийн ирцийн тоо. Санаатайгаар
	// хэвээр үлдээв — DESIGN.md-ийн нээлттэй асуулт.
	attendance, err := e.store.CountAttendance()
	if err != nil {
		return nil, err
	}

	series, err := e.monthlySeries()
	if err != nil {
		return nil, err
	}

	branches, err := e.store.Branches()
	if err != nil {
		return nil, err
	}
	branchRevenue := make([]BranchRevenue, 0, len(branches))
	for _, b := range branches {
		rev, err := e.store.SumPaymentsByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		branchRevenue = append(branchRevenue, BranchRevenue{Name: b.Name, Revenue: rev})
	}

	byStatus, err := e.store.MembersByStatus()
	if err != nil {
		return nil, err
	}
	statusBreakdown := make([]StatusCount, 0, len(byStatus))
	for _, g := range byStatus {
		statusBreakdown = append(statusBreakdown, StatusCount{Status: labelFor(statusLabels, g.Key), Count: g.Count})
	}

	return &Analytics{
		TotalRevenue:        totalRevenue,
		ActiveMembers:       activeMembers,
		TotalMembers:        totalMembers,
		MonthlyAttendance:   attendance,
		AvgRevenuePerMember: avgRevenue,
		MonthlyTrend:        series,
		BranchRevenue:       branchRevenue,
		StatusBreakdown:     statusBreakdown,
	}, nil
}

func (e *Engine) InvestorStats() (*InvestorStats, error) {
	totalRevenue, err := e.store.SumPayments()
	if err != nil {
		return nil, err
	}

	branches, err := e.store.Branches()
	if err != nil {
		return nil, err
	}
	trainers, err := e.store.Trainers()
	if err != nil {
		return nil, err
	}

	var totalOperatingCost float64
	for _, b := range branches {
		totalOperatingCost += b.OperatingCost
	}
	var totalSalaries float64
	for _, t := range trainers {
		totalSalaries += t.Salary
	}

	monthlyOpCost := totalOperatingCost + totalSalaries
	// "annualRevenue" нь бүх цагийн нийлбэр; нэрийг нь хөндөөгүй.
	annualRevenue := totalRevenue
	annualCost := monthlyOpCost * 12
	annualProfit := annualRevenue - annualCost
	roi := annualProfit / InitialInvestment * 100

	// Хоёр дахь, бие даасан "сарын орлого": идэвхтэй гишүүдийн тоог дундаж
	// сарын төлбөрөөр үржүүлнэ. Төлбөрийн хүснэгтээс гаргадаг тоотой
	// зориуд нэгтгээгүй.
	activeMembers, err := e.store.CountMembersByStatus(models.StatusActive)
	if err != nil {
		return nil, err
	}
	avgFee, err := e.store.AverageActiveMonthlyFee()
	if err != nil {
		return nil, err
	}
	if avgFee == 0 {
		avgFee = DefaultMonthlyFee
	}
	monthlyRevenue := float64(activeMembers) * avgFee

	series, err := e.monthlySeries()
	if err != nil {
		return nil, err
	}
	monthlyPnL := make([]MonthPnL, 0, 12)
	for _, p := range series {
		monthlyPnL = append(monthlyPnL, MonthPnL{Month: p.Month, Revenue: p.Revenue, Cost: monthlyOpCost})
	}

	branchProfitability := make([]BranchProfit, 0, len(branches))
	for _, b := range branches {
		rev, err := e.store.SumPaymentsByBranch(b.ID)
		if err != nil {
			return nil, err
		}
		var branchSalaries float64
		for _, t := range trainers {
			if t.BranchID == b.ID {
				branchSalaries += t.Salary
			}
		}
		branchCost := b.OperatingCost + branchSalaries
		branchProfitability = append(branchProfitability, BranchProfit{
			Name:   b.Name,
			Profit: rev - branchCost*12,
		})
	}

	return &InvestorStats{
		AnnualRevenue:       annualRevenue,
		OperatingCost:       monthlyOpCost,
		AnnualProfit:        annualProfit,
		ROI:                 roi,
		InitialInvestment:   InitialInvestment,
		MonthlyRevenue:      monthlyRevenue,
		MonthlyPnL:          monthlyPnL,
		BranchProfitability: branchProfitability,
	}, nil
}

func (e *Engine) PublicStats() (*PublicStats, error) {
	activeMembers, err := e.store.CountMembersByStatus(models.StatusActive)
	if err != nil {
		return nil, err
	}
	trainers, err := e.store.CountActiveTrainers()
	if err != nil {
		return nil, err
	}
	branches, err := e.store.CountActiveBranches()
	if err != nil {
		return nil, err
	}
	courses, err := e.store.CountActiveCourses()
	if err != nil {
		return nil, err
	}
	return &PublicStats{
		ActiveMembers: activeMembers,
		TotalTrainers: trainers,
		TotalBranches: branches,
		WeeklyCourses: courses * 5,
	}, nil
}
