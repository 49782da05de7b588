package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health"

	grpchealth "github.com/dtroode/mycard-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/mycard-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/mycard-server/internal/api/grpc/server"
	httprouter "github.com/dtroode/mycard-server/internal/api/http/router"
	httpserver "github.com/dtroode/mycard-server/internal/api/http/server"
	"github.com/dtroode/mycard-server/internal/model"
	"github.com/dtroode/mycard-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health server",
		RunE:  runServe,
	}
}

type listenedServer struct {
	server   model.Server
	security model.SecurityLayer
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger
	cfg := a.cfg

	httpApp := httprouter.New(a.cards, a.profiles, a.auth, a.contextManager, cfg.HTTP, logger.With("component", "http")).Register()

	healthServer := health.NewServer()
	checker := grpchealth.NewChecker(healthServer, a.db, cfg.GRPC.HealthInterval, logger.With("component", "health"))
	grpcServer := grpcrouter.New(healthServer, logger.With("component", "grpc")).Register()

	servers := []listenedServer{
		{
			server:   httpserver.NewHTTPServer(httpApp, fmt.Sprintf(":%s", cfg.HTTP.Port)),
			security: server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
		{
			server:   grpcserver.NewGRPCServer(grpcServer, fmt.Sprintf(":%s", cfg.GRPC.Port)),
			security: server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		},
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		checker.Run(ctx)
	}()

	for _, ls := range servers {
		wg.Add(1)
		go func(ls listenedServer) {
			defer wg.Done()
			logger.Info("Starting server on", "server", ls.server.Name(), "address", ls.server.Address())
			if err := ls.server.Start(ls.security); err != nil {
				logger.Error("failed to start server", "server", ls.server.Name(), "error", err)
				stop()
			}
		}(ls)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, ls := range servers {
		if err := ls.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "server", ls.server.Name(), "error", err, "address", ls.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")

	return nil
}
