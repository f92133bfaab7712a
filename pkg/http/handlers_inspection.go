package http

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/labels"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

type InspectionQuery struct {
	AparID        uint                 `form:"apar_id"`
	InspectorID   uint                 `form:"inspector_id"`
	OverallStatus models.OverallStatus `form:"overall_status"`
	DateFrom      string               `form:"date_from"`
	DateTo        string               `form:"date_to"`
}

func (q InspectionQuery) Filter() (models.InspectionFilter, error) {
	filter := models.InspectionFilter{
		AparID:        q.AparID,
		InspectorID:   q.InspectorID,
		OverallStatus: q.OverallStatus,
	}
	if q.OverallStatus != "" && !slices.Contains(models.AllOverallStatuses(), q.OverallStatus) {
		return filter, fmt.Errorf("unknown overall_status %q", q.OverallStatus)
	}
	parse := func(field, value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		d, err := common.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return &d, nil
	}

	var err error
	if filter.DateFrom, err = parse("date_from", q.DateFrom); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parse("date_to", q.DateTo); err != nil {
		return filter, err
	}
	return filter, nil
}

func (rs *RestfulServer) ListInspections(c *gin.Context) {
	opts, ok := bindPage(c)
	if !ok {
		return
	}

	var q InspectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		badRequest(c, err)
		return
	}

	page, err := rs.Apar.Inspection.List(c.Request.Context(), filter, opts)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Page[InspectionResponse]{
		Data:     newInspectionResponses(page.Data, rs.Apar.CurrentTime()),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	})
}

func (rs *RestfulServer) GetInspection(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	withItems, err := strconv.ParseBool(c.DefaultQuery("items", "true"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid items flag %q", c.Query("items")))
		return
	}

	inspection, err := rs.Apar.Inspection.Get(c.Request.Context(), id, withItems)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewInspectionResponse(*inspection, rs.Apar.CurrentTime()))
}

// CreateInspection records an inspection with the caller as inspector.
func (rs *RestfulServer) CreateInspection(c *gin.Context) {
	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inspection, err := rs.Apar.Inspection.Create(c.Request.Context(), currentActor(c), req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewInspectionResponse(*inspection, rs.Apar.CurrentTime()))
}

func (rs *RestfulServer) UpdateInspection(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inspection, err := rs.Apar.Inspection.Update(c.Request.Context(), currentActor(c), id, req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewInspectionResponse(*inspection, rs.Apar.CurrentTime()))
}

func (rs *RestfulServer) DeleteInspection(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Apar.Inspection.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type DeriveRequest struct {
	Items []ItemRequest `json:"items"`
}

// DeriveStatus previews the overall status a checklist would be stored with.
// Nothing is persisted.
func (rs *RestfulServer) DeriveStatus(c *gin.Context) {
	var req DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	verr := apar.NewValidationError()
	statuses := make([]models.ItemStatus, 0, len(req.Items))
	for i, item := range req.Items {
		if !slices.Contains(models.AllItemStatuses(), item.Status) {
			verr.Add(fmt.Sprintf("items.%d.status", i), "is not a valid item status")
			continue
		}
		statuses = append(statuses, item.Status)
	}
	if err := verr.OrNil(); err != nil {
		renderError(c, err)
		return
	}

	status := apar.DeriveOverallStatus(statuses)
	c.JSON(http.StatusOK, gin.H{
		"overall_status":       status,
		"overall_status_label": labels.OverallStatus(status),
	})
}
