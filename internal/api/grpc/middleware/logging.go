package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/dtroode/mycard-server/internal/logger"
)

// Logging feeds the go-grpc-middleware logging interceptors into the service logger.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Log implements logging.Logger. The interceptor levels share slog's numbering.
func (l *Logging) Log(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
	l.logger.Log(ctx, slog.Level(lvl), msg, fields...)
}

// UnaryServerInterceptor logs method, duration and code of finished unary calls.
func (l *Logging) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(logging.LoggerFunc(l.Log), logging.WithLogOnEvents(logging.FinishCall))
}

// StreamServerInterceptor logs method, duration and code of finished streams.
func (l *Logging) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(logging.LoggerFunc(l.Log), logging.WithLogOnEvents(logging.FinishCall))
}
