package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/mycard-server/internal/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the card store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker keeps the overall gRPC health status in line with the store.
type Checker struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger
	serving  bool
}

// NewChecker creates a Checker publishing to server.
func NewChecker(server *health.Server, pinger Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	return &Checker{
		server:   server,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Check pings the store once and updates the status.
func (c *Checker) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := c.pinger.Ping(pingCtx)
	serving := err == nil

	if serving != c.serving {
		if serving {
			c.logger.Info("Health: store reachable, serving")
		} else {
			c.logger.Error("Health: store unreachable, not serving", "error", err.Error())
		}
	}
	c.serving = serving

	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	c.server.SetServingStatus("", status)
}

// Run checks immediately and then on every interval until ctx is done, after which all
// services are reported NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	c.Check(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
