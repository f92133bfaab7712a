package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/apar-inspection-service/pkg/models"

	z "github.com/Oudwins/zog"
)

type PageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

var pageQuerySchema = z.Struct(z.Shape{
	"page":    z.Int().GTE(0),
	"perPage": z.Int().GTE(0).LTE(100),
})

func bindPage(c *gin.Context) (models.ListOptions, bool) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return models.ListOptions{}, false
	}
	if issues := pageQuerySchema.Validate(&q); len(issues) > 0 {
		renderIssues(c, issues)
		return models.ListOptions{}, false
	}
	return models.ListOptions{Page: q.Page, PerPage: q.PerPage}, true
}

func (rs *RestfulServer) ListApars(c *gin.Context) {
	opts, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := rs.Apar.Asset.List(c.Request.Context(), opts)
	if err != nil {
		renderError(c, err)
		return
	}

	now := rs.Apar.CurrentTime()
	data := make([]AparResponse, 0, len(page.Data))
	for _, a := range page.Data {
		data = append(data, NewAparResponse(a, now))
	}
	c.JSON(http.StatusOK, models.Page[AparResponse]{
		Data:     data,
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	})
}

// GetApar returns the asset with its inspection history, newest first.
func (rs *RestfulServer) GetApar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	asset, err := rs.Apar.Asset.Get(ctx, id)
	if err != nil {
		renderError(c, err)
		return
	}

	history, err := rs.Apar.Inspection.List(ctx, models.InspectionFilter{AparID: id}, models.ListOptions{})
	if err != nil {
		renderError(c, err)
		return
	}

	now := rs.Apar.CurrentTime()
	resp := NewAparResponse(*asset, now)
	resp.Inspections = newInspectionResponses(history.Data, now)
	c.JSON(http.StatusOK, resp)
}

func (rs *RestfulServer) CreateApar(c *gin.Context) {
	var req AparRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := rs.Apar.Asset.Create(c.Request.Context(), currentActor(c), req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewAparResponse(*asset, rs.Apar.CurrentTime()))
}

func (rs *RestfulServer) UpdateApar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AparRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := rs.Apar.Asset.Update(c.Request.Context(), currentActor(c), id, req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAparResponse(*asset, rs.Apar.CurrentTime()))
}

func (rs *RestfulServer) DeleteApar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Apar.Asset.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
