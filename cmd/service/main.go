package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/client/centrifugo"
	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/fanout"
	"github.com/s21platform/chat-delivery-service/internal/infra"
	"github.com/s21platform/chat-delivery-service/internal/pkg/jwt"
	"github.com/s21platform/chat-delivery-service/internal/pkg/tx"
	"github.com/s21platform/chat-delivery-service/internal/presence"
	"github.com/s21platform/chat-delivery-service/internal/repository/memory"
	db "github.com/s21platform/chat-delivery-service/internal/repository/postgres"
	"github.com/s21platform/chat-delivery-service/internal/rest"
	"github.com/s21platform/chat-delivery-service/internal/service"
	"github.com/s21platform/chat-delivery-service/internal/ws"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	service.DBRepo
	Ping(ctx context.Context) error
}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dbRepo store
	switch cfg.Service.StoreBackend {
	case config.StoreBackendMemory:
		logger.Warn("using the in-memory store, data is lost on restart")
		dbRepo = memory.New()
	default:
		pgRepo := db.New(cfg)
		defer pgRepo.Close()
		dbRepo = pgRepo
	}

	presenceStore := presence.New(cfg)
	defer presenceStore.Close()

	authVerifier := jwt.New(cfg.Auth.JWTSecret)
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	hub := fanout.NewHub(logger, cfg.Fanout.CommandBuffer, cfg.Fanout.SendBuffer)

	var publisher service.Publisher = hub
	if cfg.Fanout.Backend == config.FanoutBackendCentrifugo {
		centrifugeClient := centrifugo.New(cfg)
		defer centrifugeClient.Close()
		publisher = centrifugeClient
	}

	chatService := service.New(dbRepo, publisher, logger, service.WithPollOverlap(cfg.Poll.Overlap))

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.AuthInterceptorGRPC(authVerifier),
			infra.LoggerGRPC(logger),
			tx.TxMiddlewareGRPC(dbRepo),
		),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthReporter := infra.NewHealthReporter(healthServer, logger, map[string]infra.Pinger{
		"store":    dbRepo,
		"presence": presenceStore,
	})

	handler := rest.New(chatService, jwtGenerator, infra.NewPollLimiter(cfg.Poll.RatePerSec, cfg.Poll.RateBurst), presenceStore)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, authVerifier)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	if cfg.Fanout.Backend != config.FanoutBackendCentrifugo {
		router.Handle("/ws", ws.New(hub, chatService, jwtGenerator, presenceStore, logger, cfg.Fanout))
	}

	rest.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		return healthReporter.Run(gCtx)
	})

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Sprintf("failed to shut down HTTP server: %v", err))
		}
		m.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
