package models

import "time"

type PassBand string

const (
	PassBandGood     PassBand = "good"
	PassBandWarning  PassBand = "warning"
	PassBandCritical PassBand = "critical"
)

type AssetStatusSummary struct {
	Total                 int64                `json:"total"`
	Baik                  int64                `json:"baik"`
	Rusak                 int64                `json:"rusak"`
	NotInspectedThisMonth int64                `json:"not_inspected_this_month"`
	StatusDistribution    map[AparStatus]int64 `json:"status_distribution"`
}

type UserInspectionCount struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	InspectionsCount int64  `json:"inspections_count"`
}

type AssetInspectionStat struct {
	ID                 uint       `json:"id"`
	Number             string     `json:"number"`
	Location           string     `json:"location"`
	Status             AparStatus `json:"status"`
	InspectionsCount   int64      `json:"inspections_count"`
	LastInspectionDate *time.Time `json:"last_inspection_date"`
}

type InspectionPassRate struct {
	ID             uint          `json:"id"`
	AparID         uint          `json:"apar_id"`
	AparNumber     string        `json:"apar_number"`
	AparLocation   string        `json:"apar_location"`
	InspectorName  string        `json:"inspector_name"`
	InspectionDate time.Time     `json:"inspection_date"`
	OverallStatus  OverallStatus `json:"overall_status"`
	ItemsCount     int64         `json:"items_count"`
	PassedItems    int64         `json:"passed_items"`
	PassRate       int           `json:"pass_rate"`
	Band           PassBand      `json:"band"`
}

type LocationCount struct {
	Location string `json:"location"`
	Total    int64  `json:"total"`
}

type MonthlyCount struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

type ExpiryWindow struct {
	Expired      int64 `json:"expired"`
	ExpiringSoon int64 `json:"expiring_soon"`
}

type AdminDashboard struct {
	Summary           AssetStatusSummary    `json:"summary"`
	TotalUsers        int64                 `json:"total_users"`
	TotalInspections  int64                 `json:"total_inspections"`
	Users             []UserInspectionCount `json:"users"`
	Apars             []AssetInspectionStat `json:"apars"`
	Inspections       []InspectionPassRate  `json:"inspections"`
	RecentInspections []Inspection          `json:"recent_inspections"`
	ByLocation        []LocationCount       `json:"by_location"`
}

type UserDashboard struct {
	TotalApars         int64                `json:"total_apars"`
	ActiveApars        int64                `json:"active_apars"`
	Expiry             ExpiryWindow         `json:"expiry"`
	RecentInspections  []Inspection         `json:"recent_inspections"`
	MonthlyInspections []MonthlyCount       `json:"monthly_inspections"`
	StatusDistribution map[AparStatus]int64 `json:"status_distribution"`
}
