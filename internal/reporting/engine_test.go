package reporting

import (
	"errors"
	"testing"

	"vegete-backend/internal/models"
	"vegete-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore: in-memory мөрүүдээс query-нүүдийг тооцдог тест хэрэгжилт.
type fakeStore struct {
	branches      []models.Branch
	trainers      []models.Trainer
	members       []models.Member
	payments      []models.Payment
	attendance    int64
	activeCourses int64
	err           error
}

func (f *fakeStore) CountMembers() (int64, error) {
	return int64(len(f.members)), f.err
}

func (f *fakeStore) CountMembersByStatus(status models.MembershipStatus) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.MembershipStatus == status {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) CountTrainers() (int64, error) {
	return int64(len(f.trainers)), f.err
}

func (f *fakeStore) CountBranches() (int64, error) {
	return int64(len(f.branches)), f.err
}

func (f *fakeStore) groupMembers(key func(models.Member) string) []storage.GroupCount {
	var order []string
	counts := map[string]int64{}
	for _, m := range f.members {
		k := key(m)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	rows := make([]storage.GroupCount, 0, len(order))
	for _, k := range order {
		rows = append(rows, storage.GroupCount{Key: k, Count: counts[k]})
	}
	return rows
}

func (f *fakeStore) MembersByType() ([]storage.GroupCount, error) {
	return f.groupMembers(func(m models.Member) string { return string(m.MembershipType) }), f.err
}

func (f *fakeStore) MembersByStatus() ([]storage.GroupCount, error) {
	return f.groupMembers(func(m models.Member) string { return string(m.MembershipStatus) }), f.err
}

func (f *fakeStore) Branches() ([]models.Branch, error) {
	return f.branches, f.err
}

func (f *fakeStore) CountMembersByBranch(branchID string) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.BranchID == branchID {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) CountTrainersByBranch(branchID string) (int64, error) {
	var n int64
	for _, t := range f.trainers {
		if t.BranchID == branchID {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) RecentMembers(limit int) ([]storage.MemberListItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]storage.MemberListItem, 0, limit)
	for i := len(f.members) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, storage.MemberListItem{Member: f.members[i]})
	}
	return items, nil
}

func (f *fakeStore) Trainers() ([]models.Trainer, error) {
	return f.trainers, f.err
}

func (f *fakeStore) SumPayments() (float64, error) {
	var total float64
	for _, p := range f.payments {
		total += p.Amount
	}
	return total, f.err
}

func (f *fakeStore) SumPaymentsByBranch(branchID string) (float64, error) {
	var total float64
	for _, p := range f.payments {
		if p.BranchID == branchID {
			total += p.Amount
		}
	}
	return total, f.err
}

func (f *fakeStore) SumPaymentsForMonth(month string, year int) (float64, error) {
	var total float64
	for _, p := range f.payments {
		if p.Month == month && p.Year == year {
			total += p.Amount
		}
	}
	return total, f.err
}

func (f *fakeStore) AverageActiveMonthlyFee() (float64, error) {
	var sum float64
	var n int64
	for _, m := range f.members {
		if m.MembershipStatus == models.StatusActive {
			sum += m.MonthlyFee
			n++
		}
	}
	if n == 0 {
		return 0, f.err
	}
	return sum / float64(n), f.err
}

func (f *fakeStore) CountAttendance() (int64, error) {
	return f.attendance, f.err
}

func (f *fakeStore) CountActiveTrainers() (int64, error) {
	var n int64
	for _, t := range f.trainers {
		if t.IsActive {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) CountActiveBranches() (int64, error) {
	var n int64
	for _, b := range f.branches {
		if b.IsActive {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) CountActiveCourses() (int64, error) {
	return f.activeCourses, f.err
}

// seededStore: тест сценар — 1 салбар (үйл ажиллагааны зардал 5 сая),
// 1 дасгалжуулагч (цалин 2 сая), 3 идэвхтэй гишүүн (төлбөр 150 мянга),
// 2026 оны 1-р сард тус бүр 150 мянгын 3 төлбөр.
func seededStore() *fakeStore {
	branch := models.Branch{ID: "b1", Name: "Төв салбар", OperatingCost: 5000000, IsActive: true}
	trainer := models.Trainer{ID: "t1", BranchID: "b1", Salary: 2000000, IsActive: true}
	members := []models.Member{
		{ID: "m1", BranchID: "b1", MembershipStatus: models.StatusActive, MembershipType: models.MembershipBasic, MonthlyFee: 150000},
		{ID: "m2", BranchID: "b1", MembershipStatus: models.StatusActive, MembershipType: models.MembershipBasic, MonthlyFee: 150000},
		{ID: "m3", BranchID: "b1", MembershipStatus: models.StatusActive, MembershipType: models.MembershipPremium, MonthlyFee: 150000},
	}
	payments := []models.Payment{
		{ID: "p1", MemberID: "m1", BranchID: "b1", Amount: 150000, Month: "1", Year: 2026},
		{ID: "p2", MemberID: "m2", BranchID: "b1", Amount: 150000, Month: "1", Year: 2026},
		{ID: "p3", MemberID: "m3", BranchID: "b1", Amount: 150000, Month: "1", Year: 2026},
	}
	return &fakeStore{
		branches: []models.Branch{branch},
		trainers: []models.Trainer{trainer},
		members:  members,
		payments: payments,
	}
}

func TestDashboardStats(t *testing.T) {
	engine := NewEngine(seededStore())

	stats, err := engine.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalMembers)
	assert.Equal(t, int64(3), stats.ActiveMembers)
	assert.Equal(t, int64(1), stats.TotalTrainers)
	assert.Equal(t, int64(1), stats.TotalBranches)

	require.Len(t, stats.BranchStats, 1)
	assert.Equal(t, "Төв салбар", stats.BranchStats[0].Name)
	assert.Equal(t, int64(3), stats.BranchStats[0].Members)
	assert.Equal(t, int64(1), stats.BranchStats[0].Trainers)

	require.Len(t, stats.MembershipBreakdown, 2)
	assert.Equal(t, TypeCount{Type: "Энгийн", Count: 2}, stats.MembershipBreakdown[0])
	assert.Equal(t, TypeCount{Type: "Премиум", Count: 1}, stats.MembershipBreakdown[1])

	require.Len(t, stats.MonthlyRevenue, 12)
	assert.Equal(t, "1-р сар", stats.MonthlyRevenue[0].Month)
	assert.Equal(t, 450000.0, stats.MonthlyRevenue[0].Revenue)
	for _, point := range stats.MonthlyRevenue[1:] {
		assert.Equal(t, 0.0, point.Revenue)
	}

	assert.Len(t, stats.RecentMembers, 3)
}

func TestMonthlySeriesAlwaysTwelveEntries(t *testing.T) {
	engine := NewEngine(&fakeStore{})

	stats, err := engine.DashboardStats()
	require.NoError(t, err)

	require.Len(t, stats.MonthlyRevenue, 12)
	for i, point := range stats.MonthlyRevenue {
		assert.Equal(t, monthLabels[i], point.Month)
		assert.Equal(t, 0.0, point.Revenue)
	}
}

func TestAnalyticsScenario(t *testing.T) {
	st := seededStore()
	st.attendance = 7
	engine := NewEngine(st)

	analytics, err := engine.Analytics()
	require.NoError(t, err)

	assert.Equal(t, 450000.0, analytics.TotalRevenue)
	assert.Equal(t, int64(3), analytics.TotalMembers)
	assert.Equal(t, int64(3), analytics.ActiveMembers)
	assert.InDelta(t, 150000.0, analytics.AvgRevenuePerMember, 0.001)
	// Бүх цагийн ирцийн тоо — сар шүүхгүй.
	assert.Equal(t, int64(7), analytics.MonthlyAttendance)

	require.Len(t, analytics.BranchRevenue, 1)
	assert.Equal(t, 450000.0, analytics.BranchRevenue[0].Revenue)

	require.Len(t, analytics.StatusBreakdown, 1)
	assert.Equal(t, StatusCount{Status: "Идэвхтэй", Count: 3}, analytics.StatusBreakdown[0])
}

func TestAnalyticsAvgRevenueWithNoMembers(t *testing.T) {
	engine := NewEngine(&fakeStore{
		payments: []models.Payment{{Amount: 99999, Month: "3", Year: 2026}},
	})

	analytics, err := engine.Analytics()
	require.NoError(t, err)

	assert.Equal(t, int64(0), analytics.TotalMembers)
	assert.Equal(t, 0.0, analytics.AvgRevenuePerMember)
}

func TestInvestorScenario(t *testing.T) {
	engine := NewEngine(seededStore())

	stats, err := engine.InvestorStats()
	require.NoError(t, err)

	assert.Equal(t, 7000000.0, stats.OperatingCost)
	assert.Equal(t, 450000.0, stats.AnnualRevenue)
	assert.Equal(t, 84000000.0, stats.OperatingCost*12)
	assert.Equal(t, -83550000.0, stats.AnnualProfit)
	assert.InDelta(t, -83550000.0/InitialInvestment*100, stats.ROI, 0.0001)
	assert.Equal(t, float64(InitialInvestment), stats.InitialInvestment)

	// Хоёр дахь тодорхойлолт: идэвхтэй гишүүд × дундаж сарын төлбөр.
	assert.Equal(t, 450000.0, stats.MonthlyRevenue)

	require.Len(t, stats.MonthlyPnL, 12)
	assert.Equal(t, 450000.0, stats.MonthlyPnL[0].Revenue)
	for _, point := range stats.MonthlyPnL {
		assert.Equal(t, 7000000.0, point.Cost)
	}

	require.Len(t, stats.BranchProfitability, 1)
	// R − (C + S) × 12 = 450000 − 7000000 × 12
	assert.Equal(t, 450000.0-7000000.0*12, stats.BranchProfitability[0].Profit)
}

func TestInvestorMonthlyRevenueFallbackFee(t *testing.T) {
	// Идэвхтэй гишүүд байгаа ч дундаж төлбөр 0 бол үндсэн 150000-г хэрэглэнэ.
	engine := NewEngine(&fakeStore{
		members: []models.Member{
			{ID: "m1", MembershipStatus: models.StatusActive, MonthlyFee: 0},
			{ID: "m2", MembershipStatus: models.StatusActive, MonthlyFee: 0},
		},
	})

	stats, err := engine.InvestorStats()
	require.NoError(t, err)

	assert.Equal(t, 2*float64(DefaultMonthlyFee), stats.MonthlyRevenue)
}

func TestPublicStats(t *testing.T) {
	st := seededStore()
	st.activeCourses = 4
	engine := NewEngine(st)

	stats, err := engine.PublicStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.ActiveMembers)
	assert.Equal(t, int64(1), stats.TotalTrainers)
	assert.Equal(t, int64(1), stats.TotalBranches)
	assert.Equal(t, int64(20), stats.WeeklyCourses)
}

func TestSummariesAreAllOrNothing(t *testing.T) {
	st := seededStore()
	st.err = errors.New("connection reset")
	engine := NewEngine(st)

	stats, err := engine.DashboardStats()
	assert.Nil(t, stats)
	assert.Error(t, err)

	analytics, err := engine.Analytics()
	assert.Nil(t, analytics)
	assert.Error(t, err)

	investor, err := engine.InvestorStats()
	assert.Nil(t, investor)
	assert.Error(t, err)
}
