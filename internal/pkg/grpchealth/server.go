// Package grpchealth отдает состояние сервиса по стандартному протоколу grpc.health.v1.
package grpchealth

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"parcel-service/pkg/logger"
)

const (
	ServiceName = "parcel-service"

	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	log           logger.Logger
	grpcServer    *grpc.Server
	health        *health.Server
	pinger        Pinger
	checkInterval time.Duration
}

func New(log logger.Logger, pinger Pinger, checkInterval time.Duration) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		log:           log.With(logger.NewField("component", "grpc-health")),
		grpcServer:    grpcServer,
		health:        healthServer,
		pinger:        pinger,
		checkInterval: checkInterval,
	}
}

// Serve блокирует до Shutdown.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// Watch проверяет хранилище раз в checkInterval и выставляет статус до отмены ctx.
func (s *Server) Watch(ctx context.Context) {
	s.check(ctx)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// Shutdown переводит все сервисы в NOT_SERVING и дожидается активных вызовов.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

func (s *Server) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.checkInterval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Warn("health check failed", logger.NewField("error", err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
