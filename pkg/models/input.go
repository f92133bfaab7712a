package models

import "time"

// Actor is the authenticated user on whose behalf a write is performed.
// Transports resolve it and pass it explicitly into the core.
type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type AparInput struct {
	Number     string
	Location   string
	Type       AparType
	Capacity   string
	FillDate   string
	ExpiryDate string
	Status     AparStatus
	Notes      *string
}

type ItemInput struct {
	ItemType ItemType
	Status   ItemStatus
	Notes    *string
}

type InspectionInput struct {
	AparID           uint
	InspectionDate   string
	DigitalSignature *string
	Notes            *string
	// OverallStatus is a client hint only; the stored value is always derived
	// from Items.
	OverallStatus OverallStatus
	Items         []ItemInput
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type InspectionFilter struct {
	AparID        uint
	InspectorID   uint
	OverallStatus OverallStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}

const DefaultPerPage = 10

type ListOptions struct {
	Page    int
	PerPage int
}

// Paginated reports whether a page was requested; zero options list everything.
func (o ListOptions) Paginated() bool {
	return o.Page > 0
}

func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 {
		o.PerPage = DefaultPerPage
	}
	if o.PerPage > 100 {
		o.PerPage = 100
	}
	return o
}

func (o ListOptions) Offset() int {
	o = o.Normalize()
	return (o.Page - 1) * o.PerPage
}

type Page[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

func NewPage[T any](data []T, total int64, opts ListOptions) Page[T] {
	if data == nil {
		data = []T{}
	}
	if !opts.Paginated() {
		return Page[T]{Data: data, Total: total, Page: 1, PerPage: len(data), LastPage: 1}
	}

	opts = opts.Normalize()
	lastPage := int((total + int64(opts.PerPage) - 1) / int64(opts.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Page[T]{Data: data, Total: total, Page: opts.Page, PerPage: opts.PerPage, LastPage: lastPage}
}
