package grpc

import (
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/limiter"
)

type DashboardServer struct {
	Apar             *apar.APAR
	RateLimiterStore *limiter.RateLimiterStore
	Issuer           auth.Issuer
}

func (s *DashboardServer) CheckUserLimiter(userID uint) bool {
	return s.RateLimiterStore.Allow(userID)
}

// AdminMethods lists the calls only admins may make.
var AdminMethods = []string{
	DashboardService_GetAdminDashboard_FullMethodName,
}

// LimitedMethods lists the calls charged against the caller's rate limit.
var LimitedMethods = []string{
	DashboardService_GetAdminDashboard_FullMethodName,
	DashboardService_GetUserDashboard_FullMethodName,
	DashboardService_DeriveOverallStatus_FullMethodName,
}
