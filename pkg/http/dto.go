package http

import (
	"time"

	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/labels"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

type AparRequest struct {
	Number     string            `json:"number"`
	Location   string            `json:"location"`
	Type       models.AparType   `json:"type"`
	Capacity   string            `json:"capacity"`
	FillDate   string            `json:"fill_date"`
	ExpiryDate string            `json:"expiry_date"`
	Status     models.AparStatus `json:"status"`
	Notes      *string           `json:"notes"`
}

func (r AparRequest) Input() models.AparInput {
	return models.AparInput{
		Number:     r.Number,
		Location:   r.Location,
		Type:       r.Type,
		Capacity:   r.Capacity,
		FillDate:   r.FillDate,
		ExpiryDate: r.ExpiryDate,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}

type ItemRequest struct {
	ItemType models.ItemType   `json:"item_type"`
	Status   models.ItemStatus `json:"status"`
	Notes    *string           `json:"notes"`
}

type InspectionRequest struct {
	AparID           uint                 `json:"apar_id"`
	InspectionDate   string               `json:"inspection_date"`
	DigitalSignature *string              `json:"digital_signature"`
	Notes            *string              `json:"notes"`
	OverallStatus    models.OverallStatus `json:"overall_status"`
	Items            []ItemRequest        `json:"items"`
}

func (r InspectionRequest) Input() models.InspectionInput {
	return models.InspectionInput{
		AparID:           r.AparID,
		InspectionDate:   r.InspectionDate,
		DigitalSignature: r.DigitalSignature,
		Notes:            r.Notes,
		OverallStatus:    r.OverallStatus,
		Items: common.Mapper(r.Items, func(i ItemRequest) models.ItemInput {
			return models.ItemInput{ItemType: i.ItemType, Status: i.Status, Notes: i.Notes}
		}),
	}
}

type UserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

func (r UserRequest) Input() models.UserInput {
	return models.UserInput{Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role}
}

type AparResponse struct {
	models.Apar
	FillDate    string               `json:"fill_date"`
	ExpiryDate  string               `json:"expiry_date"`
	TypeLabel   string               `json:"type_label"`
	StatusLabel string               `json:"status_label"`
	ExpiryFlag  labels.ExpiryFlag    `json:"expiry_flag"`
	Inspections []InspectionResponse `json:"inspections,omitempty"`
}

func NewAparResponse(a models.Apar, now time.Time) AparResponse {
	expiry := models.TimeOf(a.ExpiryDate)
	return AparResponse{
		Apar:        a,
		FillDate:    models.TimeOf(a.FillDate).Format(common.DateLayout),
		ExpiryDate:  expiry.Format(common.DateLayout),
		TypeLabel:   labels.AparType(a.Type),
		StatusLabel: labels.AparStatus(a.Status),
		ExpiryFlag:  labels.Expiry(expiry, now),
	}
}

type ItemResponse struct {
	models.InspectionItem
	ItemTypeLabel string `json:"item_type_label"`
	StatusLabel   string `json:"status_label"`
}

type UserResponse struct {
	models.User
	RoleLabel string `json:"role_label"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{User: u, RoleLabel: labels.Role(u.Role)}
}

type InspectionResponse struct {
	models.Inspection
	InspectionDate     string         `json:"inspection_date"`
	OverallStatusLabel string         `json:"overall_status_label"`
	Apar               *AparResponse  `json:"apar,omitempty"`
	Inspector          *UserResponse  `json:"inspector,omitempty"`
	Items              []ItemResponse `json:"items,omitempty"`
}

func NewInspectionResponse(i models.Inspection, now time.Time) InspectionResponse {
	resp := InspectionResponse{
		Inspection:         i,
		InspectionDate:     models.TimeOf(i.InspectionDate).Format(common.DateLayout),
		OverallStatusLabel: labels.OverallStatus(i.OverallStatus),
		Items: common.Mapper(i.Items, func(item models.InspectionItem) ItemResponse {
			return ItemResponse{
				InspectionItem: item,
				ItemTypeLabel:  labels.ItemType(item.ItemType),
				StatusLabel:    labels.ItemStatus(item.Status),
			}
		}),
	}
	if i.Apar != nil {
		a := NewAparResponse(*i.Apar, now)
		resp.Apar = &a
	}
	if i.Inspector != nil {
		u := NewUserResponse(*i.Inspector)
		resp.Inspector = &u
	}
	return resp
}

func newInspectionResponses(list []models.Inspection, now time.Time) []InspectionResponse {
	out := make([]InspectionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, NewInspectionResponse(i, now))
	}
	return out
}

type AdminDashboardResponse struct {
	*models.AdminDashboard
	RecentInspections []InspectionResponse `json:"recent_inspections"`
}

type UserDashboardResponse struct {
	*models.UserDashboard
	StatusLabels      map[models.AparStatus]string `json:"status_labels"`
	RecentInspections []InspectionResponse         `json:"recent_inspections"`
}
