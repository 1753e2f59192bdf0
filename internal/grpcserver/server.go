// Package grpcserver публикует состояние шлюза через стандартный gRPC Health.
package grpcserver

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName - имя сервиса шлюза в ответах Health.
const ServiceName = "shortener.Gateway"

// Pinger проверяет доступность бэкенда.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer - gRPC-сервер со службой Health, статус которой
// отражает доступность бэкенда сокращения.
type HealthServer struct {
	srv      *grpc.Server
	health   *health.Server
	pinger   Pinger
	logger   *zap.Logger
	interval time.Duration
}

func NewHealthServer(pinger Pinger, logger *zap.Logger, interval time.Duration) *HealthServer {
	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	// До первой проверки бэкенд считается недоступным
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		srv:      srv,
		health:   hs,
		pinger:   pinger,
		logger:   logger,
		interval: interval,
	}
}

// Probe один раз проверяет бэкенд и обновляет статус.
func (s *HealthServer) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		s.logger.Warn("backend health probe failed", zap.Error(err))
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Run проверяет бэкенд каждые interval, пока не отменён ctx.
func (s *HealthServer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}

// Serve принимает соединения на lis до вызова Stop.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.logger.Info("gRPC health server started", zap.String("address", lis.Addr().String()))
	return s.srv.Serve(lis)
}

// Stop переводит статус в NOT_SERVING и мягко останавливает сервер.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}

// Health возвращает реализацию службы Health, например для проверок в тестах.
func (s *HealthServer) Health() healthpb.HealthServer {
	return s.health
}
