// Package seed fills an empty database with sample assets and their
// inspection history, going through the core so statuses are derived the
// same way as for real inspections.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

func ptr(s string) *string { return &s }

var SampleApars = []models.AparInput{
	{
		Number:     "APAR-001",
		Location:   "Lantai 1 - Ruang Server",
		Type:       models.AparTypePowder,
		Capacity:   "6 kg",
		FillDate:   "2024-01-15",
		ExpiryDate: "2026-01-15",
		Status:     models.AparStatusActive,
		Notes:      ptr("APAR untuk ruang server utama"),
	},
	{
		Number:     "APAR-002",
		Location:   "Lantai 1 - Ruang Meeting",
		Type:       models.AparTypeCO2,
		Capacity:   "5 kg",
		FillDate:   "2024-02-20",
		ExpiryDate: "2026-02-20",
		Status:     models.AparStatusActive,
		Notes:      ptr("APAR CO2 untuk ruang meeting"),
	},
	{
		Number:     "APAR-003",
		Location:   "Lantai 2 - Ruang Kerja",
		Type:       models.AparTypePowder,
		Capacity:   "6 kg",
		FillDate:   "2023-12-10",
		ExpiryDate: "2025-12-10",
		Status:     models.AparStatusActive,
		Notes:      ptr("APAR untuk area kerja lantai 2"),
	},
	{
		Number:     "APAR-004",
		Location:   "Lantai 2 - Ruang Break",
		Type:       models.AparTypeFoam,
		Capacity:   "9 liter",
		FillDate:   "2024-03-05",
		ExpiryDate: "2026-03-05",
		Status:     models.AparStatusActive,
		Notes:      ptr("APAR foam untuk dapur dan ruang break"),
	},
	{
		Number:     "APAR-005",
		Location:   "Parkiran - Area Utama",
		Type:       models.AparTypePowder,
		Capacity:   "6 kg",
		FillDate:   "2023-11-15",
		ExpiryDate: "2025-11-15",
		Status:     models.AparStatusMaintenance,
		Notes:      ptr("APAR di area parkiran, sedang dalam pemeliharaan"),
	},
}

// InspectionsPerApar is how many monthly inspections each sample gets, the
// last one dated today.
const InspectionsPerApar = 4

func sampleInspection(aparID uint, monthsAgo int, a *apar.APAR, inspector string) models.InspectionInput {
	date := a.CurrentTime().AddDate(0, -monthsAgo, 0)
	oldest := monthsAgo == InspectionsPerApar-1

	input := models.InspectionInput{
		AparID:           aparID,
		InspectionDate:   date.Format(common.DateLayout),
		DigitalSignature: ptr("Ttd. " + inspector),
		Notes:            ptr("Semua item dalam kondisi baik"),
	}
	if oldest {
		input.Notes = ptr("Beberapa item perlu perhatian")
	}

	for _, itemType := range models.AllItemTypes() {
		item := models.ItemInput{ItemType: itemType, Status: models.ItemStatusGood}
		if oldest && (itemType == models.ItemTypePressure || itemType == models.ItemTypeCleanliness) {
			item.Status = models.ItemStatusNeedsRepair
		}
		if oldest && itemType == models.ItemTypePressure {
			item.Notes = ptr("Tekanan sedikit menurun")
		}
		input.Items = append(input.Items, item)
	}
	return input
}

// Run creates the sample assets that do not exist yet, each with its
// inspection history recorded by inspector. Running it twice changes nothing.
func Run(ctx context.Context, a *apar.APAR, inspector models.Actor) (int, error) {
	logger := common.GetLoggerWith(common.LoggerNameSeed)

	user, err := a.User.Get(ctx, inspector.ID)
	if err != nil {
		return 0, fmt.Errorf("seed inspector: %w", err)
	}

	created := 0
	for _, sample := range SampleApars {
		var existing int64
		if err := a.Db.Conn.WithContext(ctx).Model(&models.Apar{}).Where("number = ?", sample.Number).Count(&existing).Error; err != nil {
			return created, err
		}
		if existing > 0 {
			logger.Debug("Sample already present", zap.String("number", sample.Number))
			continue
		}

		asset, err := a.Asset.Create(ctx, inspector, sample)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", sample.Number, err)
		}

		for monthsAgo := InspectionsPerApar - 1; monthsAgo >= 0; monthsAgo-- {
			if _, err := a.Inspection.Create(ctx, inspector, sampleInspection(asset.ID, monthsAgo, a, user.Name)); err != nil {
				return created, fmt.Errorf("seed %s inspection: %w", sample.Number, err)
			}
		}
		created++
	}

	logger.Info("Seeded sample data", zap.Int("apars", created))
	return created, nil
}
