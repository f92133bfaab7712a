package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

type claimsKey struct{}

func methodSet(methods []string) map[string]bool {
	return common.Reducer(methods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)
}

// actorFrom returns the caller resolved by the auth interceptor.
func actorFrom(ctx context.Context) (models.Actor, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	if !ok {
		return models.Actor{}, false
	}
	return claims.Actor(), true
}

// CreateAuthInterceptor requires a bearer token in the "authorization"
// metadata on every call, and the admin role on adminMethods.
func (s *DashboardServer) CreateAuthInterceptor(adminMethods []string) grpc.UnaryServerInterceptor {
	adminOnly := methodSet(adminMethods)
	logger := common.GetLoggerWith(common.LoggerNameGrpcServer)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				header = values[0]
			}
		}

		token, err := auth.BearerToken(header)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		claims, err := s.Issuer.ValidateToken(token)
		if err != nil {
			logger.Info("Rejected token", zap.String("method", info.FullMethod), zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		if adminOnly[info.FullMethod] && !claims.Actor().IsAdmin() {
			return nil, status.Error(codes.PermissionDenied, "admin role required")
		}

		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

// CreateRateLimitInterceptor charges targetMethods against the caller's
// limiter. It must run after the auth interceptor.
func (s *DashboardServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targets := methodSet(targetMethods)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if targets[info.FullMethod] {
			if actor, ok := actorFrom(ctx); ok && !s.CheckUserLimiter(actor.ID) {
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}

// ServerOptions wires the interceptors in the order they depend on.
func (s *DashboardServer) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			s.CreateAuthInterceptor(AdminMethods),
			s.CreateRateLimitInterceptor(LimitedMethods),
		),
	}
}
