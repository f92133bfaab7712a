package apar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
	_ "liyu1981.xyz/apar-inspection-service/pkg/testing"
)

type reportFixture struct {
	a      *APAR
	admin  *models.User
	budi   *models.User
	sari   *models.User
	assets map[string]*models.Apar
}

// newReportFixture builds five assets across three locations with three
// inspections, evaluated at fixedNow (2024-06-15).
func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	common.SetTestLoggerNop()

	f := &reportFixture{a: newTestAPAR(t), assets: map[string]*models.Apar{}}
	f.admin = createTestUser(t, f.a, "Admin", "admin@example.com", models.RoleAdmin)
	f.budi = createTestUser(t, f.a, "Budi", "budi@example.com", models.RolePetugas)
	f.sari = createTestUser(t, f.a, "Sari", "sari@example.com", models.RolePetugas)

	for _, c := range []struct {
		number   string
		location string
		status   models.AparStatus
		expiry   string
	}{
		{"APAR-A", "Gedung A", models.AparStatusActive, "2025-01-01"},
		{"APAR-B", "Gedung A", models.AparStatusActive, "2025-01-01"},
		{"APAR-C", "Gedung B", models.AparStatusInactive, "2024-08-01"},
		{"APAR-D", "Gedung C", models.AparStatusExpired, "2024-06-01"},
		{"APAR-E", "Gedung B", models.AparStatusMaintenance, "2025-01-01"},
	} {
		input := aparInput(c.number)
		input.Location = c.location
		input.Status = c.status
		input.ExpiryDate = c.expiry
		f.assets[c.number] = createTestAsset(t, f.a, input)
	}

	ctx := context.Background()
	for _, c := range []struct {
		inspector *models.User
		number    string
		date      string
		items     map[models.ItemType]models.ItemStatus
	}{
		{f.budi, "APAR-A", "2024-03-01", nil},
		{f.sari, "APAR-B", "2024-05-20", map[models.ItemType]models.ItemStatus{
			models.ItemTypeContent: models.ItemStatusDamaged,
		}},
		{f.budi, "APAR-A", "2024-06-10", map[models.ItemType]models.ItemStatus{
			models.ItemTypePressure:    models.ItemStatusNeedsRepair,
			models.ItemTypeCleanliness: models.ItemStatusNeedsRepair,
		}},
	} {
		_, err := f.a.Inspection.Create(ctx, actorOf(c.inspector), inspectionInput(f.assets[c.number].ID, c.date, c.items))
		require.NoError(t, err)
	}
	return f
}

func TestAssetStatusSummary(t *testing.T) {
	f := newReportFixture(t)

	summary, err := f.a.Report.AssetStatusSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.Total)
	assert.Equal(t, int64(2), summary.Baik)
	assert.Equal(t, int64(2), summary.Rusak)
	assert.Equal(t, int64(4), summary.NotInspectedThisMonth)
	assert.Equal(t, map[models.AparStatus]int64{
		models.AparStatusActive:      2,
		models.AparStatusInactive:    1,
		models.AparStatusExpired:     1,
		models.AparStatusMaintenance: 1,
	}, summary.StatusDistribution)

	// a month later nothing has been inspected
	f.a.Now = func() time.Time { return fixedNow.AddDate(0, 1, 0) }
	summary, err = f.a.Report.AssetStatusSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.NotInspectedThisMonth)
}

func TestAssetStatusSummary_Empty(t *testing.T) {
	common.SetTestLoggerNop()
	a := newTestAPAR(t)

	summary, err := a.Report.AssetStatusSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.NotInspectedThisMonth)
	assert.Len(t, summary.StatusDistribution, len(models.AllAparStatuses()))
	for _, n := range summary.StatusDistribution {
		assert.Zero(t, n)
	}
}

func TestUserInspectionCounts(t *testing.T) {
	f := newReportFixture(t)

	rows, err := f.a.Report.UserInspectionCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Name] = r.InspectionsCount
	}
	assert.Equal(t, map[string]int64{"Admin": 0, "Budi": 2, "Sari": 1}, counts)
	assert.Equal(t, "Sari", rows[0].Name)
	assert.Equal(t, "sari@example.com", rows[0].Email)
	assert.Equal(t, models.RolePetugas, rows[0].Role)
}

func TestAssetInspectionStats(t *testing.T) {
	f := newReportFixture(t)

	stats, err := f.a.Report.AssetInspectionStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 5)

	numbers := common.Mapper(stats, func(s models.AssetInspectionStat) string { return s.Number })
	assert.Equal(t, []string{"APAR-A", "APAR-B", "APAR-C", "APAR-D", "APAR-E"}, numbers)

	assert.Equal(t, int64(2), stats[0].InspectionsCount)
	require.NotNil(t, stats[0].LastInspectionDate)
	assert.Equal(t, "2024-06-10", stats[0].LastInspectionDate.Format(common.DateLayout))

	assert.Equal(t, int64(1), stats[1].InspectionsCount)
	require.NotNil(t, stats[1].LastInspectionDate)
	assert.Equal(t, "2024-05-20", stats[1].LastInspectionDate.Format(common.DateLayout))

	for _, s := range stats[2:] {
		assert.Zero(t, s.InspectionsCount)
		assert.Nil(t, s.LastInspectionDate, s.Number)
	}
}

func TestInspectionPassRates(t *testing.T) {
	f := newReportFixture(t)

	rates, err := f.a.Report.InspectionPassRates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 3)

	type row struct {
		Number string
		Date   string
		Passed int64
		Rate   int
		Band   models.PassBand
		Status models.OverallStatus
	}
	got := common.Mapper(rates, func(r models.InspectionPassRate) row {
		assert.Equal(t, int64(ChecklistSize), r.ItemsCount)
		return row{r.AparNumber, r.InspectionDate.Format(common.DateLayout), r.PassedItems, r.PassRate, r.Band, r.OverallStatus}
	})
	assert.Equal(t, []row{
		{"APAR-A", "2024-06-10", 5, 71, models.PassBandWarning, models.OverallStatusNeedsAttention},
		{"APAR-B", "2024-05-20", 6, 86, models.PassBandGood, models.OverallStatusCritical},
		{"APAR-A", "2024-03-01", 7, 100, models.PassBandGood, models.OverallStatusGood},
	}, got)
	assert.Equal(t, "Budi", rates[0].InspectorName)
	assert.Equal(t, "Gedung A", rates[0].AparLocation)
}

func TestInspectionPassRates_NoItems(t *testing.T) {
	f := newReportFixture(t)

	bare := models.Inspection{
		AparID:         f.assets["APAR-E"].ID,
		InspectorID:    f.sari.ID,
		InspectionDate: models.DateOf(fixedNow),
		OverallStatus:  models.OverallStatusGood,
	}
	require.NoError(t, f.a.Db.Conn.Omit(clause.Associations).Create(&bare).Error)

	rates, err := f.a.Report.InspectionPassRates(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rates)
	assert.Equal(t, bare.ID, rates[0].ID)
	assert.Zero(t, rates[0].ItemsCount)
	assert.Zero(t, rates[0].PassRate)
	assert.Equal(t, models.PassBandCritical, rates[0].Band)
}

func TestAssetsByLocation(t *testing.T) {
	f := newReportFixture(t)

	rows, err := f.a.Report.AssetsByLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.LocationCount{
		{Location: "Gedung A", Total: 2},
		{Location: "Gedung B", Total: 2},
		{Location: "Gedung C", Total: 1},
	}, rows)
}

func TestMonthlyInspectionCounts(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	months, err := f.a.Report.MonthlyInspectionCounts(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthlyCount{
		{Month: 3, Total: 1},
		{Month: 5, Total: 1},
		{Month: 6, Total: 1},
	}, months)

	months, err = f.a.Report.MonthlyInspectionCounts(ctx, 2023)
	require.NoError(t, err)
	assert.Empty(t, months)
}

func TestExpiryWindow(t *testing.T) {
	f := newReportFixture(t)

	window, err := f.a.Report.ExpiryWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ExpiryWindow{Expired: 1, ExpiringSoon: 1}, window)

	// by December the 2025-01-01 assets are inside the horizon and C has lapsed
	f.a.Now = func() time.Time { return time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC) }
	window, err = f.a.Report.ExpiryWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ExpiryWindow{Expired: 2, ExpiringSoon: 3}, window)
}

func TestRecentInspections(t *testing.T) {
	f := newReportFixture(t)

	recent, err := f.a.Report.RecentInspections(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-06-10", models.TimeOf(recent[0].InspectionDate).Format(common.DateLayout))
	assert.Equal(t, "2024-05-20", models.TimeOf(recent[1].InspectionDate).Format(common.DateLayout))
	require.NotNil(t, recent[0].Apar)
	assert.Equal(t, "APAR-A", recent[0].Apar.Number)
	require.NotNil(t, recent[1].Inspector)
	assert.Equal(t, "Sari", recent[1].Inspector.Name)

	recent, err = f.a.Report.RecentInspections(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestRecentInspections_BackdatedEntry(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	backdated, err := f.a.Inspection.Create(ctx, actorOf(f.sari), inspectionInput(f.assets["APAR-B"].ID, "2023-01-01", nil))
	require.NoError(t, err)

	dateOf := func(in models.Inspection) string {
		return models.TimeOf(in.InspectionDate).Format(common.DateLayout)
	}

	user, err := f.a.Report.UserDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, user.RecentInspections, 4)
	assert.Equal(t, "2024-06-10", dateOf(user.RecentInspections[0]))
	assert.Equal(t, backdated.ID, user.RecentInspections[3].ID)

	recent, err := f.a.Report.RecentInspections(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "2024-06-10", dateOf(recent[0]))

	admin, err := f.a.Report.AdminDashboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, admin.RecentInspections)
	assert.Equal(t, backdated.ID, admin.RecentInspections[0].ID)
}

func TestAdminDashboard(t *testing.T) {
	f := newReportFixture(t)

	d, err := f.a.Report.AdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.Summary.Total)
	assert.Equal(t, int64(4), d.Summary.NotInspectedThisMonth)
	assert.Equal(t, int64(3), d.TotalUsers)
	assert.Equal(t, int64(3), d.TotalInspections)
	assert.Len(t, d.Users, 3)
	assert.Len(t, d.Apars, 5)
	assert.Len(t, d.Inspections, 3)
	assert.Len(t, d.RecentInspections, 3)
	assert.Len(t, d.ByLocation, 3)
}

func TestUserDashboard(t *testing.T) {
	f := newReportFixture(t)

	d, err := f.a.Report.UserDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.TotalApars)
	assert.Equal(t, int64(2), d.ActiveApars)
	assert.Equal(t, models.ExpiryWindow{Expired: 1, ExpiringSoon: 1}, d.Expiry)
	assert.Len(t, d.RecentInspections, 3)
	assert.Equal(t, []models.MonthlyCount{{Month: 3, Total: 1}, {Month: 5, Total: 1}, {Month: 6, Total: 1}}, d.MonthlyInspections)
	assert.Equal(t, int64(1), d.StatusDistribution[models.AparStatusMaintenance])
}

func TestDashboards_CanceledContext(t *testing.T) {
	f := newReportFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.a.Report.AdminDashboard(ctx)
	assert.Error(t, err)
}
