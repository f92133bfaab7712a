package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/apar-inspection-service/pkg/apar"
	"liyu1981.xyz/apar-inspection-service/pkg/auth"
	"liyu1981.xyz/apar-inspection-service/pkg/common"
	"liyu1981.xyz/apar-inspection-service/pkg/db"
	aparGrpc "liyu1981.xyz/apar-inspection-service/pkg/grpc"
	aparHttp "liyu1981.xyz/apar-inspection-service/pkg/http"
	"liyu1981.xyz/apar-inspection-service/pkg/limiter"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
	"liyu1981.xyz/apar-inspection-service/pkg/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !common.IsProduction() {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg, openDatabase(cfg)); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(cfg *Config) *db.DB {
	if cfg.DBType == "memory" {
		return db.GetInstance(db.UseMemorySqliteDialector())
	}
	return db.GetInstance(db.UseSqliteDialector())
}

// run serves until the process is signalled. It owns dbInstance and closes
// it before returning, including on startup errors.
func run(cfg *Config, dbInstance *db.DB) error {
	logger := common.GetLogger()

	defer func() {
		if err := dbInstance.Close(); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}()

	aparCore := apar.New(*dbInstance)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	admin, generated, err := bootstrapAdmin(ctx, aparCore, cfg)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if generated != "" {
		// shown once; it is not logged
		fmt.Printf("Created admin %s with password: %s\n", admin.Email, generated)
	}

	if cfg.Seed {
		if _, err := seed.Run(ctx, aparCore, models.Actor{ID: admin.ID, Role: admin.Role}); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	issuer := auth.Issuer{Secret: cfg.JWTSecret, Expiry: cfg.JWTExpire}
	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	g, gctx := errgroup.WithContext(ctx)

	if cfg.GrpcHostPort != "" {
		dashboardServer := &aparGrpc.DashboardServer{
			Apar:             aparCore,
			RateLimiterStore: limiter.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
			Issuer:           issuer,
		}
		s := grpc.NewServer(dashboardServer.ServerOptions()...)
		aparGrpc.RegisterDashboardServiceServer(s, dashboardServer)
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}

		g.Go(func() error {
			logger.Info("start gRPC server on " + cfg.GrpcHostPort)
			return s.Serve(listener)
		})
		g.Go(func() error {
			<-gctx.Done()
			s.GracefulStop()
			return nil
		})
	}

	rs := &aparHttp.RestfulServer{
		Server:           gin.Default(),
		Apar:             aparCore,
		RateLimiterStore: limiter.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		Issuer:           issuer,
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiter)

	httpServer := &http.Server{Addr: cfg.HttpHostPort, Handler: rs.Server}

	g.Go(func() error {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
