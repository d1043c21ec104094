package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/talent-api/internal/handlers/admin/v1alpha1"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the talent-api gRPC server with the talent, rarity and report services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	services, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("failed to close stores", zap.Error(err))
		}
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, err := newGRPCServer(services, logger)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer registers the admin services, health and reflection
func newGRPCServer(a *app, log *zap.Logger) (*grpc.Server, error) {
	interceptorLog := interceptorLogger(log)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		log.Error("recovered from panic", zap.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLog),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLog),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	talentHandler, err := v1alpha1.NewTalentHandler(&v1alpha1.TalentHandlerConfig{TalentService: a.talents})
	if err != nil {
		return nil, fmt.Errorf("failed to create talent handler: %w", err)
	}
	rarityHandler, err := v1alpha1.NewRarityHandler(&v1alpha1.RarityHandlerConfig{RarityService: a.rarities})
	if err != nil {
		return nil, fmt.Errorf("failed to create rarity handler: %w", err)
	}
	reportHandler, err := v1alpha1.NewReportHandler(&v1alpha1.ReportHandlerConfig{ReportService: a.reports})
	if err != nil {
		return nil, fmt.Errorf("failed to create report handler: %w", err)
	}

	v1alpha1.RegisterTalentServiceServer(srv, talentHandler)
	v1alpha1.RegisterRarityServiceServer(srv, rarityHandler)
	v1alpha1.RegisterReportServiceServer(srv, reportHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{v1alpha1.TalentServiceName, v1alpha1.RarityServiceName, v1alpha1.ReportServiceName} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)
	return srv, nil
}
