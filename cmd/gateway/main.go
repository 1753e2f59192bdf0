package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Totarae/URLShortenerGateway/internal/backend"
	"github.com/Totarae/URLShortenerGateway/internal/config"
	"github.com/Totarae/URLShortenerGateway/internal/grpcserver"
	"github.com/Totarae/URLShortenerGateway/internal/handlers"
	"github.com/Totarae/URLShortenerGateway/internal/logger"
	"github.com/Totarae/URLShortenerGateway/internal/router"
	"github.com/Totarae/URLShortenerGateway/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Инициализация конфигурации
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	zaplog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zaplog.Sync()
	zaplog.Info("configuration loaded", cfg.Fields()...)

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout, zaplog)
	gateway := service.NewGatewayService(client, service.NewRegexpExtractor(), zaplog)
	handler := handlers.NewHandler(gateway, zaplog)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handler, zaplog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zaplog.Info("HTTP server started", zap.String("address", cfg.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		zaplog.Info("shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		hs := grpcserver.NewHealthServer(gateway, zaplog, cfg.HealthInterval)
		g.Go(func() error { return hs.Serve(lis) })
		g.Go(func() error { return hs.Run(gctx) })
		g.Go(func() error {
			<-gctx.Done()
			hs.Stop()
			return nil
		})
	}

	return g.Wait()
}
