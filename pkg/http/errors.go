package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
)

// renderError maps core errors onto status codes. Validation failures carry
// every rejected field so forms can show them next to their inputs.
func renderError(c *gin.Context, err error) {
	var verr *apar.ValidationError
	var nerr *apar.NotFoundError
	var terr *apar.TransactionError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, gin.H{"error": nerr.Error()})
	case errors.Is(err, apar.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &terr):
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the change was not saved, please retry", "retryable": true})
	default:
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func logError(c *gin.Context, err error) {
	common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
		zap.String("request_id", c.GetString(ctxKeyRequestID)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// renderIssues reports request shape problems found by a zog schema.
func renderIssues(c *gin.Context, issues z.ZogIssueMap) {
	fields := map[string][]string{}
	for field, list := range issues {
		if strings.HasPrefix(field, "$") {
			continue
		}
		for _, issue := range list {
			fields[field] = append(fields[field], issue.Message)
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
