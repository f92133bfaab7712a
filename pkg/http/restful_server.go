package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/limiter"
)

type RestfulServer struct {
	Server           *gin.Engine
	Apar             *apar.APAR
	RateLimiterStore *limiter.RateLimiterStore
	Issuer           auth.Issuer
}

func (rs *RestfulServer) CheckUserLimiter(userID uint) bool {
	return rs.RateLimiterStore.Allow(userID)
}

func (rs *RestfulServer) SetLimiter(userID uint, userRate float64, userBurst int) {
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestID())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/auth/login", rs.Login)

	authed := rs.Server.Group("/", rs.Authenticate(), rs.RateLimit())
	{
		authed.GET("/me", rs.Me)
		authed.GET("/dashboard", rs.GetUserDashboard)

		apars := authed.Group("/apars")
		{
			apars.GET("", rs.ListApars)
			apars.GET("/:id", rs.GetApar)
			apars.POST("", RequireAdmin(), rs.CreateApar)
			apars.PUT("/:id", RequireAdmin(), rs.UpdateApar)
			apars.DELETE("/:id", RequireAdmin(), rs.DeleteApar)
		}

		inspections := authed.Group("/inspections")
		{
			inspections.GET("", rs.ListInspections)
			inspections.POST("", rs.CreateInspection)
			inspections.POST("/derive", rs.DeriveStatus)
			inspections.GET("/:id", rs.GetInspection)
			inspections.PUT("/:id", rs.UpdateInspection)
			inspections.DELETE("/:id", RequireAdmin(), rs.DeleteInspection)
		}

		admin := authed.Group("/admin", RequireAdmin())
		{
			admin.GET("/dashboard", rs.GetAdminDashboard)
			admin.GET("/users", rs.ListUsers)
			admin.POST("/users", rs.CreateUser)
			admin.PUT("/users/:id", rs.UpdateUser)
			admin.DELETE("/users/:id", rs.DeleteUser)
			admin.POST("/limiter/:user_id", rs.PostLimiter)
		}
	}
}
