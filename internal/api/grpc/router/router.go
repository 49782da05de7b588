package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/mycard-server/internal/api/grpc/middleware"
	"github.com/dtroode/mycard-server/internal/logger"
)

// Router builds the gRPC server exposing health and reflection.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates a new gRPC Router instance.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		health: healthServer,
		logger: logger,
	}
}

// Register creates the gRPC server with request logging and panic recovery, and
// registers the health and reflection services on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(),
			recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(),
			recovery.StreamServerInterceptor(),
		),
	)

	grpc_health_v1.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
