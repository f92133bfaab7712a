package apar

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

const (
	// ExpiryHorizonDays bounds the "expiring soon" dashboard count.
	ExpiryHorizonDays = 90
	// RecentInspectionsLimit is how many inspections dashboards show.
	RecentInspectionsLimit = 5
)

func monthBounds(now time.Time) (datatypes.Date, datatypes.Date) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return models.DateOf(start), models.DateOf(start.AddDate(0, 1, 0))
}

func (a *APAR) statusDistribution(ctx context.Context) (map[models.AparStatus]int64, error) {
	var rows []struct {
		Status models.AparStatus
		Total  int64
	}
	err := a.Db.Conn.WithContext(ctx).
		Model(&models.Apar{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := map[models.AparStatus]int64{}
	for _, s := range models.AllAparStatuses() {
		dist[s] = 0
	}
	for _, r := range rows {
		dist[r.Status] = r.Total
	}
	return dist, nil
}

// assetStatusSummary counts assets as baik (active) or rusak (inactive or
// expired) and those without an inspection dated in the current month.
func (a *APAR) assetStatusSummary(ctx context.Context) (models.AssetStatusSummary, error) {
	var summary models.AssetStatusSummary

	dist, err := a.statusDistribution(ctx)
	if err != nil {
		return summary, err
	}
	for _, n := range dist {
		summary.Total += n
	}
	summary.StatusDistribution = dist
	summary.Baik = dist[models.AparStatusActive]
	summary.Rusak = dist[models.AparStatusInactive] + dist[models.AparStatusExpired]

	from, to := monthBounds(a.now())
	conn := a.Db.Conn.WithContext(ctx)
	inspectedThisMonth := conn.Model(&models.Inspection{}).
		Select("1").
		Where("inspections.apar_id = apars.id").
		Where("inspections.inspection_date >= ? AND inspections.inspection_date < ?", from, to)

	err = conn.Model(&models.Apar{}).
		Where("NOT EXISTS (?)", inspectedThisMonth).
		Count(&summary.NotInspectedThisMonth).Error
	return summary, err
}

func (a *APAR) userInspectionCounts(ctx context.Context) ([]models.UserInspectionCount, error) {
	rows := []models.UserInspectionCount{}
	err := a.Db.Conn.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id, users.name, users.email, users.role, COUNT(inspections.id) AS inspections_count").
		Joins("LEFT JOIN inspections ON inspections.inspector_id = users.id").
		Group("users.id").
		Order("users.created_at DESC, users.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (a *APAR) assetInspectionStats(ctx context.Context) ([]models.AssetInspectionStat, error) {
	conn := a.Db.Conn.WithContext(ctx)

	var apars []models.Apar
	if err := conn.Order("number ASC").Find(&apars).Error; err != nil {
		return nil, err
	}

	var dates []struct {
		AparID         uint
		InspectionDate datatypes.Date
	}
	if err := conn.Model(&models.Inspection{}).Select("apar_id, inspection_date").Scan(&dates).Error; err != nil {
		return nil, err
	}

	type acc struct {
		count int64
		last  time.Time
	}
	byApar := map[uint]*acc{}
	for _, d := range dates {
		entry, ok := byApar[d.AparID]
		if !ok {
			entry = &acc{}
			byApar[d.AparID] = entry
		}
		entry.count++
		if t := models.TimeOf(d.InspectionDate); t.After(entry.last) {
			entry.last = t
		}
	}

	return common.Mapper(apars, func(ap models.Apar) models.AssetInspectionStat {
		stat := models.AssetInspectionStat{
			ID:       ap.ID,
			Number:   ap.Number,
			Location: ap.Location,
			Status:   ap.Status,
		}
		if entry, ok := byApar[ap.ID]; ok {
			last := entry.last
			stat.InspectionsCount = entry.count
			stat.LastInspectionDate = &last
		}
		return stat
	}), nil
}

func (a *APAR) inspectionPassRates(ctx context.Context) ([]models.InspectionPassRate, error) {
	var rows []struct {
		ID             uint
		AparID         uint
		AparNumber     string
		AparLocation   string
		InspectorName  string
		InspectionDate datatypes.Date
		OverallStatus  models.OverallStatus
		ItemsCount     int64
		PassedItems    int64
	}

	err := a.Db.Conn.WithContext(ctx).
		Table("inspections").
		Select(`inspections.id, inspections.apar_id,
			apars.number AS apar_number, apars.location AS apar_location,
			users.name AS inspector_name,
			inspections.inspection_date, inspections.overall_status,
			COUNT(inspection_items.id) AS items_count,
			COALESCE(SUM(CASE WHEN inspection_items.status = ? THEN 1 ELSE 0 END), 0) AS passed_items`,
			models.ItemStatusGood).
		Joins("JOIN apars ON apars.id = inspections.apar_id").
		Joins("JOIN users ON users.id = inspections.inspector_id").
		Joins("LEFT JOIN inspection_items ON inspection_items.inspection_id = inspections.id").
		Group("inspections.id").
		Order("inspections.inspection_date DESC, inspections.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.InspectionPassRate, 0, len(rows))
	for _, r := range rows {
		rate := PassRate(r.PassedItems, r.ItemsCount)
		result = append(result, models.InspectionPassRate{
			ID:             r.ID,
			AparID:         r.AparID,
			AparNumber:     r.AparNumber,
			AparLocation:   r.AparLocation,
			InspectorName:  r.InspectorName,
			InspectionDate: models.TimeOf(r.InspectionDate),
			OverallStatus:  r.OverallStatus,
			ItemsCount:     r.ItemsCount,
			PassedItems:    r.PassedItems,
			PassRate:       rate,
			Band:           PassRateBand(rate),
		})
	}
	return result, nil
}

// assetsByLocation orders by count descending; equal counts are ordered by
// location name.
func (a *APAR) assetsByLocation(ctx context.Context) ([]models.LocationCount, error) {
	rows := []models.LocationCount{}
	err := a.Db.Conn.WithContext(ctx).
		Model(&models.Apar{}).
		Select("location, COUNT(*) AS total").
		Group("location").
		Order("total DESC, location ASC").
		Scan(&rows).Error
	return rows, err
}

func (a *APAR) monthlyInspectionCounts(ctx context.Context, year int) ([]models.MonthlyCount, error) {
	from := models.DateOf(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	to := models.DateOf(time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC))

	var dates []datatypes.Date
	err := a.Db.Conn.WithContext(ctx).
		Model(&models.Inspection{}).
		Where("inspection_date >= ? AND inspection_date < ?", from, to).
		Pluck("inspection_date", &dates).Error
	if err != nil {
		return nil, err
	}

	counts := map[int]int64{}
	for _, d := range dates {
		counts[int(models.TimeOf(d).Month())]++
	}

	result := make([]models.MonthlyCount, 0, len(counts))
	for month, total := range counts {
		result = append(result, models.MonthlyCount{Month: month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

func (a *APAR) expiryWindow(ctx context.Context) (models.ExpiryWindow, error) {
	var window models.ExpiryWindow

	now := a.now()
	today := models.DateOf(now)
	horizon := models.DateOf(models.TimeOf(today).AddDate(0, 0, ExpiryHorizonDays))

	conn := a.Db.Conn.WithContext(ctx)
	if err := conn.Model(&models.Apar{}).Where("expiry_date < ?", today).Count(&window.Expired).Error; err != nil {
		return window, err
	}
	err := conn.Model(&models.Apar{}).
		Where("expiry_date >= ? AND expiry_date < ?", today, horizon).
		Count(&window.ExpiringSoon).Error
	return window, err
}

const (
	orderByInspectionDate = "inspection_date DESC, id DESC"
	orderByEntered        = "created_at DESC, id DESC"
)

// recentInspections lists the latest inspections by when they took place.
func (a *APAR) recentInspections(ctx context.Context, limit int) ([]models.Inspection, error) {
	return a.latestInspections(ctx, limit, orderByInspectionDate)
}

// recentlyEntered lists the inspections most recently recorded, whatever
// date they carry. The admin dashboard shows these.
func (a *APAR) recentlyEntered(ctx context.Context, limit int) ([]models.Inspection, error) {
	return a.latestInspections(ctx, limit, orderByEntered)
}

func (a *APAR) latestInspections(ctx context.Context, limit int, order string) ([]models.Inspection, error) {
	if limit <= 0 {
		limit = RecentInspectionsLimit
	}
	inspections := []models.Inspection{}
	err := a.Db.Conn.WithContext(ctx).
		Preload("Apar").
		Preload("Inspector").
		Order(order).
		Limit(limit).
		Find(&inspections).Error
	return inspections, err
}

func (a *APAR) countOf(ctx context.Context, model any, dest *int64) error {
	return a.Db.Conn.WithContext(ctx).Model(model).Count(dest).Error
}

// adminDashboard runs the independent admin queries concurrently.
func (a *APAR) adminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryReport)

	var d models.AdminDashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { d.Summary, err = a.assetStatusSummary(gctx); return })
	g.Go(func() error { return a.countOf(gctx, &models.User{}, &d.TotalUsers) })
	g.Go(func() error { return a.countOf(gctx, &models.Inspection{}, &d.TotalInspections) })
	g.Go(func() (err error) { d.Users, err = a.userInspectionCounts(gctx); return })
	g.Go(func() (err error) { d.Apars, err = a.assetInspectionStats(gctx); return })
	g.Go(func() (err error) { d.Inspections, err = a.inspectionPassRates(gctx); return })
	g.Go(func() (err error) { d.RecentInspections, err = a.recentlyEntered(gctx, RecentInspectionsLimit); return })
	g.Go(func() (err error) { d.ByLocation, err = a.assetsByLocation(gctx); return })

	if err := g.Wait(); err != nil {
		logger.Error("Admin dashboard failed", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (a *APAR) userDashboard(ctx context.Context) (*models.UserDashboard, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAparCore, common.LoggerCategoryReport)

	var d models.UserDashboard
	year := a.now().Year()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.countOf(gctx, &models.Apar{}, &d.TotalApars) })
	g.Go(func() error {
		return a.Db.Conn.WithContext(gctx).
			Model(&models.Apar{}).
			Where("status = ?", models.AparStatusActive).
			Count(&d.ActiveApars).Error
	})
	g.Go(func() (err error) { d.Expiry, err = a.expiryWindow(gctx); return })
	g.Go(func() (err error) { d.RecentInspections, err = a.recentInspections(gctx, RecentInspectionsLimit); return })
	g.Go(func() (err error) { d.MonthlyInspections, err = a.monthlyInspectionCounts(gctx, year); return })
	g.Go(func() (err error) { d.StatusDistribution, err = a.statusDistribution(gctx); return })

	if err := g.Wait(); err != nil {
		logger.Error("User dashboard failed", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

type IReportImpl struct {
	apar *APAR
}

func (ir *IReportImpl) AssetStatusSummary(ctx context.Context) (models.AssetStatusSummary, error) {
	return ir.apar.assetStatusSummary(ctx)
}

func (ir *IReportImpl) UserInspectionCounts(ctx context.Context) ([]models.UserInspectionCount, error) {
	return ir.apar.userInspectionCounts(ctx)
}

func (ir *IReportImpl) AssetInspectionStats(ctx context.Context) ([]models.AssetInspectionStat, error) {
	return ir.apar.assetInspectionStats(ctx)
}

func (ir *IReportImpl) InspectionPassRates(ctx context.Context) ([]models.InspectionPassRate, error) {
	return ir.apar.inspectionPassRates(ctx)
}

func (ir *IReportImpl) AssetsByLocation(ctx context.Context) ([]models.LocationCount, error) {
	return ir.apar.assetsByLocation(ctx)
}

func (ir *IReportImpl) MonthlyInspectionCounts(ctx context.Context, year int) ([]models.MonthlyCount, error) {
	return ir.apar.monthlyInspectionCounts(ctx, year)
}

func (ir *IReportImpl) ExpiryWindow(ctx context.Context) (models.ExpiryWindow, error) {
	return ir.apar.expiryWindow(ctx)
}

func (ir *IReportImpl) RecentInspections(ctx context.Context, limit int) ([]models.Inspection, error) {
	return ir.apar.recentInspections(ctx, limit)
}

func (ir *IReportImpl) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	return ir.apar.adminDashboard(ctx)
}

func (ir *IReportImpl) UserDashboard(ctx context.Context) (*models.UserDashboard, error) {
	return ir.apar.userDashboard(ctx)
}

func (a *APAR) GetIReport() IReport {
	return &IReportImpl{apar: a}
}
