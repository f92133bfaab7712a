package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/apar-inspection-service/pkg/common"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"email":    z.String().Trim().Required().Email(),
	"password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if issues := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		renderIssues(c, issues)
		return
	}

	user, err := rs.Apar.User.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	token, err := rs.Issuer.GenerateToken(user)
	if err != nil {
		renderError(c, err)
		return
	}

	common.GetLoggerWith(common.LoggerNameRestfulServer).Info("User logged in",
		zap.String("request_id", c.GetString(ctxKeyRequestID)),
		zap.Uint("user_id", user.ID),
	)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": NewUserResponse(*user)})
}

func (rs *RestfulServer) Me(c *gin.Context) {
	user, err := rs.Apar.User.Get(c.Request.Context(), currentActor(c).ID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(*user))
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	var req LimiterRequest
	if issues := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		renderIssues(c, issues)
		return
	}

	rs.SetLimiter(userID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
