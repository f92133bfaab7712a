package apar

import (
	"math"

	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// DeriveOverallStatus folds checklist item statuses into the inspection
// status. A single damaged item makes the inspection critical no matter how
// many items need repair.
func DeriveOverallStatus(statuses []models.ItemStatus) models.OverallStatus {
	needsRepair := false
	for _, s := range statuses {
		switch s {
		case models.ItemStatusDamaged:
			return models.OverallStatusCritical
		case models.ItemStatusNeedsRepair:
			needsRepair = true
		}
	}
	if needsRepair {
		return models.OverallStatusNeedsAttention
	}
	return models.OverallStatusGood
}

func DeriveFromItems(items []models.InspectionItem) models.OverallStatus {
	return DeriveOverallStatus(itemStatuses(items))
}

func itemStatuses(items []models.InspectionItem) []models.ItemStatus {
	statuses := make([]models.ItemStatus, len(items))
	for i, item := range items {
		statuses[i] = item.Status
	}
	return statuses
}

// PassRate is the rounded percentage of good items. An inspection without
// items has a pass rate of 0.
func PassRate(passed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

func PassRateBand(rate int) models.PassBand {
	switch {
	case rate >= 80:
		return models.PassBandGood
	case rate >= 60:
		return models.PassBandWarning
	default:
		return models.PassBandCritical
	}
}
