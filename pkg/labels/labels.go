// Package labels maps stored enum values to the Indonesian text shown to
// users. Records never carry presentation; callers look labels up here.
package labels

import (
	"time"

	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// ExpiringSoonDays is the window in which an asset is flagged as expiring.
const ExpiringSoonDays = 30

type ExpiryFlag string

const (
	ExpiryFlagNone         ExpiryFlag = ""
	ExpiryFlagExpiringSoon ExpiryFlag = "expiring_soon"
	ExpiryFlagExpired      ExpiryFlag = "expired"
)

var aparTypes = map[models.AparType]string{
	models.AparTypePowder: "Bubuk",
	models.AparTypeCO2:    "CO2",
	models.AparTypeFoam:   "Busa",
	models.AparTypeLiquid: "Cair",
}

var aparStatuses = map[models.AparStatus]string{
	models.AparStatusActive:      "Aktif",
	models.AparStatusInactive:    "Tidak Aktif",
	models.AparStatusExpired:     "Kadaluarsa",
	models.AparStatusMaintenance: "Pemeliharaan",
}

var itemTypes = map[models.ItemType]string{
	models.ItemTypeHose:        "Selang",
	models.ItemTypeSafetyPin:   "Pin Pengaman",
	models.ItemTypeContent:     "Isi Tabung",
	models.ItemTypeHandle:      "Pegangan",
	models.ItemTypePressure:    "Tekanan Gas",
	models.ItemTypeFunnel:      "Corong Bawah",
	models.ItemTypeCleanliness: "Kebersihan",
}

var itemStatuses = map[models.ItemStatus]string{
	models.ItemStatusGood:        "✔ Baik",
	models.ItemStatusDamaged:     "✘ Rusak",
	models.ItemStatusNeedsRepair: "✘ Perlu Perbaikan",
}

var overallStatuses = map[models.OverallStatus]string{
	models.OverallStatusGood:           "Baik",
	models.OverallStatusNeedsAttention: "Perlu Perhatian",
	models.OverallStatusCritical:       "Kritis",
}

var roles = map[models.Role]string{
	models.RoleAdmin:   "Administrator",
	models.RolePetugas: "Petugas",
}

func lookup[K ~string](table map[K]string, key K) string {
	if label, ok := table[key]; ok {
		return label
	}
	return string(key)
}

func AparType(t models.AparType) string { return lookup(aparTypes, t) }

func AparStatus(s models.AparStatus) string { return lookup(aparStatuses, s) }

func ItemType(t models.ItemType) string { return lookup(itemTypes, t) }

func ItemStatus(s models.ItemStatus) string { return lookup(itemStatuses, s) }

func OverallStatus(s models.OverallStatus) string { return lookup(overallStatuses, s) }

func Role(r models.Role) string { return lookup(roles, r) }

// Expiry flags an expiry date relative to now, comparing calendar days.
func Expiry(expiry, now time.Time) ExpiryFlag {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	e, n := day(expiry), day(now)
	switch {
	case e.Before(n):
		return ExpiryFlagExpired
	case !e.After(n.AddDate(0, 0, ExpiringSoonDays)):
		return ExpiryFlagExpiringSoon
	default:
		return ExpiryFlagNone
	}
}
