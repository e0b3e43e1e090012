package infra

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"
)

const defaultHealthInterval = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter keeps the gRPC health status in line with the dependencies
// answering Ping.
type HealthReporter struct {
	server   *health.Server
	pingers  map[string]Pinger
	logger   logger_lib.LoggerInterface
	interval time.Duration
}

func NewHealthReporter(server *health.Server, logger logger_lib.LoggerInterface, pingers map[string]Pinger) *HealthReporter {
	return &HealthReporter{
		server:   server,
		pingers:  pingers,
		logger:   logger,
		interval: defaultHealthInterval,
	}
}

// Check pings every dependency once and updates the overall status.
func (h *HealthReporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	for name, pinger := range h.pingers {
		pingCtx, cancel := context.WithTimeout(ctx, h.interval)
		err := pinger.Ping(pingCtx)
		cancel()
		if err != nil {
			h.logger.Warn(fmt.Sprintf("health check of %s failed: %v", name, err))
			servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.server.SetServingStatus("", servingStatus)
	return servingStatus
}

func (h *HealthReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return nil
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
