package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "parcel-service/internal/app"
	"parcel-service/internal/handlers/rest/all_parcels_get"
	"parcel-service/internal/handlers/rest/all_users_get"
	"parcel-service/internal/handlers/rest/all_users_paginated_get"
	"parcel-service/internal/handlers/rest/assign_parcel_put"
	"parcel-service/internal/handlers/rest/book_parcel_post"
	"parcel-service/internal/handlers/rest/cancel_parcel_put"
	"parcel-service/internal/handlers/rest/delivery_men_get"
	"parcel-service/internal/handlers/rest/healthcheck_head"
	"parcel-service/internal/handlers/rest/my_deliveries_get"
	"parcel-service/internal/handlers/rest/my_parcels_get"
	"parcel-service/internal/handlers/rest/my_reviews_get"
	"parcel-service/internal/handlers/rest/promote_user_put"
	"parcel-service/internal/handlers/rest/register_post"
	"parcel-service/internal/handlers/rest/review_post"
	"parcel-service/internal/handlers/rest/search_parcels_get"
	"parcel-service/internal/handlers/rest/social_login_post"
	"parcel-service/internal/handlers/rest/stats_get"
	"parcel-service/internal/handlers/rest/top_delivery_men_get"
	"parcel-service/internal/handlers/rest/update_parcel_put"
	"parcel-service/internal/handlers/rest/update_parcel_status_put"
	"parcel-service/internal/handlers/rest/update_profile_put"
	"parcel-service/internal/handlers/rest/user_get"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/dotenv"
	"parcel-service/internal/pkg/grpchealth"
	metrics_system "parcel-service/internal/pkg/metrics"
	"parcel-service/internal/pkg/middlewares/graceful_shutdown"
	"parcel-service/internal/pkg/middlewares/metrics"
	"parcel-service/internal/pkg/middlewares/rate_limiter"
	"parcel-service/internal/pkg/middlewares/request_id"
	"parcel-service/internal/pkg/middlewares/timeout"
	"parcel-service/internal/pkg/postgres"
	"parcel-service/internal/pkg/redis"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/logger/zap_adapter"
	"parcel-service/pkg/token_bucket"
)

const healthCheckInterval = 5 * time.Second

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithService("parcel-service"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting parcel-service application")

	loaded, err := dotenv.Load(".env")
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !loaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() как часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsEnabled {
		err = postgres.Migrate(ctx, log, pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	// фоновые задачи живут до сигнала остановки
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, pool)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// grpc health сервер
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPC.HealthPort))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	healthServer := grpchealth.New(log, pool, healthCheckInterval)
	go healthServer.Watch(ctx)

	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)
		if err := healthServer.Serve(grpcListener); err != nil {
			grpcServerErr <- err
		}
	}()
	// grpc health сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	healthServer.Shutdown()
	businessApp.BackgroundWorkers.Wait()

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pinger healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	limiter := token_bucket.NewClientLimiter(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), cfg.RateLimiterIdle)

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, pinger)).Methods("HEAD")

	// посылки
	router.Handle("/book-parcel", book_parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/update-parcel/{id}", update_parcel_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/cancel-parcel/{id}", cancel_parcel_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/update-parcel-status/{id}", update_parcel_status_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/search-parcels", search_parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/all-parcels", all_parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/my-parcels/{email}", my_parcels_get.New(log, app.ServiceParcel)).Methods("GET")

	// назначения
	router.Handle("/assign-parcel/{parcelId}", assign_parcel_put.New(log, app.ServiceAssignment)).Methods("PUT")
	router.Handle("/my-deliveries/{idOrEmail}", my_deliveries_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/promote-user/{id}", promote_user_put.New(log, app.ServiceAssignment)).Methods("PUT")

	// пользователи
	router.Handle("/register", register_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/social-login", social_login_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/user/{email}", user_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/update-profile/{email}", update_profile_put.New(log, app.ServiceUser)).Methods("PUT")
	router.Handle("/all-users", all_users_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/all-users-paginated", all_users_paginated_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/delivery-men", delivery_men_get.New(log, app.ServiceUser)).Methods("GET")

	// отзывы и статистика
	router.Handle("/review", review_post.New(log, app.ServiceReview)).Methods("POST")
	router.Handle("/my-reviews/{deliveryManId}", my_reviews_get.New(log, app.ServiceReview)).Methods("GET")
	router.Handle("/top-delivery-men", top_delivery_men_get.New(log, app.ServiceRanking)).Methods("GET")
	router.Handle("/stats", stats_get.New(log, app.ServiceStats)).Methods("GET")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, pinger healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, pinger)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
