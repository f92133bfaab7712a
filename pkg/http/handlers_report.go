package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/apar-inspection-service/pkg/labels"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

func (rs *RestfulServer) GetUserDashboard(c *gin.Context) {
	d, err := rs.Apar.Report.UserDashboard(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	statusLabels := map[models.AparStatus]string{}
	for status := range d.StatusDistribution {
		statusLabels[status] = labels.AparStatus(status)
	}

	c.JSON(http.StatusOK, UserDashboardResponse{
		UserDashboard:     d,
		StatusLabels:      statusLabels,
		RecentInspections: newInspectionResponses(d.RecentInspections, rs.Apar.CurrentTime()),
	})
}

func (rs *RestfulServer) GetAdminDashboard(c *gin.Context) {
	d, err := rs.Apar.Report.AdminDashboard(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdminDashboardResponse{
		AdminDashboard:    d,
		RecentInspections: newInspectionResponses(d.RecentInspections, rs.Apar.CurrentTime()),
	})
}
