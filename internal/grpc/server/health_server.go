// Package server реализует gRPC-сервис проверки состояния (grpc.health.v1.Health).
//
// HealthServer периодически опрашивает зависимости (хранилище, redis) и
// выставляет статус SERVING или NOT_SERVING для каждой из них и для сервиса в целом.
package server

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

// Pinger зависимость, доступность которой проверяется.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// HealthServer gRPC-сервер со стандартным health-сервисом.
type HealthServer struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	checks     map[string]Pinger
	interval   time.Duration
	log        *slog.Logger
}

// NewHealthServer регистрирует health-сервис на новом gRPC-сервере.
func NewHealthServer(lis net.Listener, checks map[string]Pinger, interval time.Duration, logger *slog.Logger) *HealthServer {
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &HealthServer{
		grpcServer: gs,
		health:     hs,
		listener:   lis,
		checks:     checks,
		interval:   interval,
		log:        logger,
	}
}

// Probe опрашивает все зависимости и обновляет статусы.
func (s *HealthServer) Probe(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for name, p := range s.checks {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := p.Ping(pctx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			s.log.Warn("dependency check failed", slog.String("dependency", name), sl.Err(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
}

// Run обслуживает запросы до отмены ctx.
func (s *HealthServer) Run(ctx context.Context) error {
	s.Probe(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gRPC health service listening on", slog.String("address", s.listener.Addr().String()))
		errCh <- s.grpcServer.Serve(s.listener)
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			s.grpcServer.GracefulStop()
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}
