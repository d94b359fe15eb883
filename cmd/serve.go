package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	grpcctx "github.com/foodygo/identity-server/internal/api/grpc/context"
	"github.com/foodygo/identity-server/internal/api/grpc/handler"
	"github.com/foodygo/identity-server/internal/api/grpc/router"
	grpcServer "github.com/foodygo/identity-server/internal/api/grpc/server"
	"github.com/foodygo/identity-server/internal/config"
	"github.com/foodygo/identity-server/internal/federation"
	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
	"github.com/foodygo/identity-server/internal/password"
	"github.com/foodygo/identity-server/internal/phone"
	"github.com/foodygo/identity-server/internal/repository/postgres"
	"github.com/foodygo/identity-server/internal/role"
	"github.com/foodygo/identity-server/internal/server"
	"github.com/foodygo/identity-server/internal/service"
	"github.com/foodygo/identity-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC identity server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logger.New(cfg.LogLevel).With("service", "identity")

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	roles := role.NewDirectory()
	hasher := password.NewBcrypt(cfg.Password.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	phones := phone.NewNormalizer(cfg.Phone.DefaultRegion)

	registration := service.NewRegistration(accountRepo, roles, hasher, logger)
	authService := service.NewAuth(accountRepo, roles, hasher, tokenManager, logger)
	lifecycle := service.NewLifecycle(accountRepo, customerRepo, logger)
	profile := service.NewProfile(accountRepo, roles, hasher, phones, logger)

	if _, created, err := registration.EnsureAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	} else if created {
		logger.Info("bootstrap admin account created", "email", cfg.Bootstrap.AdminEmail)
	}

	if cfg.OAuth.GoogleClientID == "" {
		logger.Warn("OAUTH_GOOGLE_CLIENT_ID is empty, federated login is disabled")
	}

	r := router.New(handler.Services{
		Auth:         authService,
		Registration: registration,
		Lifecycle:    lifecycle,
		Profile:      profile,
		Federation:   federation.NewGoogle(cfg.OAuth.GoogleClientID),
	}, authService, roles, grpcctx.NewManager(), logger)

	srv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	logger.Info("starting identity server",
		"version", buildVersion,
		"commit", buildCommit,
		"date", buildDate)

	serveErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			serveErr <- err
		}
	}(srv)

	select {
	case <-ctx.Done():
		logger.Info("received interruption signal, shutting down")
	case err := <-serveErr:
		logger.Error("failed to start server", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}
