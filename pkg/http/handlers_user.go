package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	opts, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := rs.Apar.User.List(c.Request.Context(), opts)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Page[UserResponse]{
		Data:     common.Mapper(page.Data, NewUserResponse),
		Total:    page.Total,
		Page:     page.Page,
		PerPage:  page.PerPage,
		LastPage: page.LastPage,
	})
}

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := rs.Apar.User.Create(c.Request.Context(), currentActor(c), req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewUserResponse(*user))
}

func (rs *RestfulServer) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := rs.Apar.User.Update(c.Request.Context(), currentActor(c), id, req.Input())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(*user))
}

func (rs *RestfulServer) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rs.Apar.User.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
