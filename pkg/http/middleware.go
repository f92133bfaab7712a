package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxKeyClaims    = "claims"
	ctxKeyRequestID = "request_id"
)

// RequestID tags every request with an id, keeping one the client supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (rs *RestfulServer) Authenticate() gin.HandlerFunc {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	return func(c *gin.Context) {
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := rs.Issuer.ValidateToken(token)
		if err != nil {
			logger.Info("Rejected token",
				zap.String("request_id", c.GetString(ctxKeyRequestID)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentActor(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckUserLimiter(currentActor(c).ID) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

// currentActor is the authenticated caller; handlers behind Authenticate
// always have one.
func currentActor(c *gin.Context) models.Actor {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims.Actor()
		}
	}
	return models.Actor{}
}
