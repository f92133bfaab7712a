package models

import (
	"time"

	"gorm.io/datatypes"
)

type AparType string

const (
	AparTypePowder AparType = "powder"
	AparTypeCO2    AparType = "co2"
	AparTypeFoam   AparType = "foam"
	AparTypeLiquid AparType = "liquid"
)

func AllAparTypes() []AparType {
	return []AparType{AparTypePowder, AparTypeCO2, AparTypeFoam, AparTypeLiquid}
}

type AparStatus string

const (
	AparStatusActive      AparStatus = "active"
	AparStatusInactive    AparStatus = "inactive"
	AparStatusExpired     AparStatus = "expired"
	AparStatusMaintenance AparStatus = "maintenance"
)

func AllAparStatuses() []AparStatus {
	return []AparStatus{AparStatusActive, AparStatusInactive, AparStatusExpired, AparStatusMaintenance}
}

type OverallStatus string

const (
	OverallStatusGood           OverallStatus = "good"
	OverallStatusNeedsAttention OverallStatus = "needs_attention"
	OverallStatusCritical       OverallStatus = "critical"
)

func AllOverallStatuses() []OverallStatus {
	return []OverallStatus{OverallStatusGood, OverallStatusNeedsAttention, OverallStatusCritical}
}

type ItemType string

const (
	ItemTypeHose        ItemType = "hose"
	ItemTypeSafetyPin   ItemType = "safety_pin"
	ItemTypeContent     ItemType = "content"
	ItemTypeHandle      ItemType = "handle"
	ItemTypePressure    ItemType = "pressure"
	ItemTypeFunnel      ItemType = "funnel"
	ItemTypeCleanliness ItemType = "cleanliness"
)

// AllItemTypes is the checklist in the order it is presented to inspectors.
func AllItemTypes() []ItemType {
	return []ItemType{
		ItemTypeHose,
		ItemTypeSafetyPin,
		ItemTypeContent,
		ItemTypeHandle,
		ItemTypePressure,
		ItemTypeFunnel,
		ItemTypeCleanliness,
	}
}

type ItemStatus string

const (
	ItemStatusGood        ItemStatus = "good"
	ItemStatusDamaged     ItemStatus = "damaged"
	ItemStatusNeedsRepair ItemStatus = "needs_repair"
)

func AllItemStatuses() []ItemStatus {
	return []ItemStatus{ItemStatusGood, ItemStatusDamaged, ItemStatusNeedsRepair}
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePetugas Role = "petugas"
)

func AllRoles() []Role {
	return []Role{RoleAdmin, RolePetugas}
}

type Apar struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Number     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"number"`
	Location   string         `gorm:"type:varchar(255);index;not null" json:"location"`
	Type       AparType       `gorm:"type:varchar(10);not null;check:type IN ('powder','co2','foam','liquid')" json:"type"`
	Capacity   string         `gorm:"type:varchar(255);not null" json:"capacity"`
	FillDate   datatypes.Date `gorm:"not null" json:"fill_date"`
	ExpiryDate datatypes.Date `gorm:"not null;index" json:"expiry_date"`
	Status     AparStatus     `gorm:"type:varchar(12);not null;default:active;check:status IN ('active','inactive','expired','maintenance')" json:"status"`
	Notes      *string        `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type Inspection struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	AparID           uint             `gorm:"not null;index" json:"apar_id"`
	InspectorID      uint             `gorm:"not null;index" json:"inspector_id"`
	InspectionDate   datatypes.Date   `gorm:"not null;index" json:"inspection_date"`
	DigitalSignature *string          `json:"digital_signature"`
	OverallStatus    OverallStatus    `gorm:"type:varchar(16);not null;default:good;check:overall_status IN ('good','needs_attention','critical')" json:"overall_status"`
	Notes            *string          `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Apar             *Apar            `gorm:"foreignKey:AparID;constraint:OnDelete:CASCADE" json:"apar,omitempty"`
	Inspector        *User            `gorm:"foreignKey:InspectorID;constraint:OnDelete:RESTRICT" json:"inspector,omitempty"`
	Items            []InspectionItem `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type InspectionItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	InspectionID uint       `gorm:"not null;index" json:"inspection_id"`
	ItemType     ItemType   `gorm:"type:varchar(16);not null;check:item_type IN ('hose','safety_pin','content','handle','pressure','funnel','cleanliness')" json:"item_type"`
	Status       ItemStatus `gorm:"type:varchar(16);not null;default:good;check:status IN ('good','damaged','needs_repair')" json:"status"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(10);not null;default:petugas;check:role IN ('admin','petugas')" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DateOf truncates t to its calendar day, expressed as midnight UTC, so every
// stored date compares consistently regardless of the caller's location.
func DateOf(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// TimeOf is the inverse of DateOf.
func TimeOf(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
