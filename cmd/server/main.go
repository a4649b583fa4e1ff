package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"carenest/internal/auth/hasher"
	"carenest/internal/auth/revocation"
	"carenest/internal/auth/token"
	bookinghandler "carenest/internal/booking/handler"
	bookingservice "carenest/internal/booking/service"
	bookingstore "carenest/internal/booking/store"
	directoryhandler "carenest/internal/directory/handler"
	directoryservice "carenest/internal/directory/service"
	httpapi "carenest/internal/http"
	identityhandler "carenest/internal/identity/handler"
	identityservice "carenest/internal/identity/service"
	caregiverstore "carenest/internal/identity/store/caregiver"
	seniorstore "carenest/internal/identity/store/senior"
	"carenest/internal/notification"
	"carenest/internal/platform/config"
	"carenest/internal/platform/httpserver"
	"carenest/internal/platform/kafka"
	"carenest/internal/platform/logger"
	"carenest/internal/platform/metrics"
	"carenest/internal/platform/postgres"
	"carenest/internal/platform/redis"
	reviewhandler "carenest/internal/review/handler"
	reviewservice "carenest/internal/review/service"
	reviewstore "carenest/internal/review/store"
	verificationhandler "carenest/internal/verification/handler"
	verificationservice "carenest/internal/verification/service"
	"carenest/pkg/platform/circuit"
	authmw "carenest/pkg/platform/middleware/auth"
	txcontext "carenest/pkg/platform/tx"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("carenest stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// caregiverStore is the union every service needs from caregiver persistence.
type caregiverStore interface {
	identityservice.CaregiverStore
	verificationservice.CaregiverStore
	reviewservice.CaregiverStore
	directoryservice.Store
}

// stores groups the persistence choice made at startup.
type stores struct {
	caregivers caregiverStore
	seniors    interface {
		identityservice.SeniorStore
		bookingservice.SeniorStore
	}
	bookings bookingservice.BookingStore
	reviews  reviewservice.ReviewStore
	tx       txcontext.Transactor
}

func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, *sql.DB, error) {
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		return &stores{
			caregivers: caregiverstore.NewInMemory(),
			seniors:    seniorstore.NewInMemory(),
			bookings:   bookingstore.NewInMemory(),
			reviews:    reviewstore.NewInMemory(),
			tx:         txcontext.NewMemory(),
		}, nil, nil
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return &stores{
		caregivers: caregiverstore.NewPostgres(db),
		seniors:    seniorstore.NewPostgres(db),
		bookings:   bookingstore.NewPostgres(db),
		reviews:    reviewstore.NewPostgres(db),
		tx:         postgres.NewTransactor(db, cfg.Database.TxTimeout),
	}, db, nil
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.UsingDevSigningKey() {
		log.Warn("JWT_SIGNING_KEY not set, using development signing key")
	}
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN not set, admin routes are locked")
	}

	checks := map[string]httpapi.HealthCheck{}

	st, db, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open stores: %w", err)
	}
	if db != nil {
		defer db.Close()
		checks["postgres"] = db.PingContext
	}

	var revocations revocation.List = revocation.NewMemoryTRL()
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocations = revocation.NewRedisTRL(redisClient.Client)
		checks["redis"] = redisClient.Health
	}

	sink, closeSink, err := notificationSink(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSink()
	if h, ok := sink.(interface{ Health(context.Context) error }); ok {
		checks["kafka"] = h.Health
	}

	dispatcher := notification.NewDispatcher(sink, log, cfg.Notify.QueueSize,
		notification.WithMetrics(notification.NewMetrics(reg)),
	)

	tokens := token.NewService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.JWTTTL)
	requireAuth := authmw.RequireAuth(tokens, revocations, log)

	identitySvc := identityservice.New(st.caregivers, st.seniors, hasher.New(cfg.Auth.BcryptCost), tokens, revocations,
		identityservice.WithLogger(log),
		identityservice.WithNotifier(dispatcher),
		identityservice.WithMetrics(identityservice.NewMetrics(reg)),
		identityservice.WithTransactor(st.tx),
		identityservice.WithAdminEmail(cfg.Notify.AdminEmail),
	)
	verificationSvc := verificationservice.New(st.caregivers,
		verificationservice.WithLogger(log),
		verificationservice.WithNotifier(dispatcher),
		verificationservice.WithMetrics(verificationservice.NewMetrics(reg)),
		verificationservice.WithTransactor(st.tx),
	)
	reviewSvc := reviewservice.New(st.reviews, st.caregivers,
		reviewservice.WithLogger(log),
		reviewservice.WithMetrics(reviewservice.NewMetrics(reg)),
		reviewservice.WithTransactor(st.tx),
	)
	bookingSvc := bookingservice.New(st.bookings, st.caregivers, st.seniors, reviewSvc,
		bookingservice.WithLogger(log),
		bookingservice.WithNotifier(dispatcher),
		bookingservice.WithMetrics(bookingservice.NewMetrics(reg)),
		bookingservice.WithTransactor(st.tx),
	)
	directorySvc := directoryservice.New(st.caregivers,
		directoryservice.WithLogger(log),
		directoryservice.WithMetrics(directoryservice.NewMetrics(reg)),
	)

	bookingH := bookinghandler.New(bookingSvc, log, requireAuth)
	reviewH := reviewhandler.New(reviewSvc, log, requireAuth)
	verificationH := verificationhandler.New(verificationSvc, log)

	router := httpapi.NewRouter(httpapi.Config{
		Logger:     log,
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
		AdminToken: cfg.AdminToken,
		Checks:     checks,
		Public: []httpapi.Routes{
			identityhandler.New(identitySvc, log, requireAuth),
			directoryhandler.New(directorySvc, log),
			bookingH,
			reviewH,
		},
		Admin: []func(r chi.Router){
			verificationH.Register,
			bookingH.RegisterAdmin,
			reviewH.RegisterAdmin,
		},
	})
	srv := httpserver.New(cfg.Addr, router, httpserver.Timeouts{
		ReadHeader:     cfg.HTTP.ReadHeaderTimeout,
		Read:           cfg.HTTP.ReadTimeout,
		Write:          cfg.HTTP.WriteTimeout,
		Idle:           cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return dispatcher.Run(gctx) })
	g.Go(func() error {
		return reviewservice.NewReconciler(reviewSvc, cfg.Reconcile.Interval, log).Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting carenest", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down carenest")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// notificationSink publishes to Kafka when brokers are configured, falling
// back to the log through a circuit breaker.
func notificationSink(ctx context.Context, cfg config.Server, log *slog.Logger) (notification.Sink, func(), error) {
	logSink := notification.NewLogSink(log)
	if len(cfg.Kafka.Brokers) == 0 {
		return logSink, func() {}, nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	if err := producer.EnsureTopic(ctx); err != nil {
		log.Warn("kafka topic check failed", "topic", cfg.Kafka.Topic, "error", err)
	}
	sink := &healthSink{
		Sink:     notification.NewFallbackSink(notification.NewKafkaSink(producer), logSink, circuit.New("notifications"), log),
		producer: producer,
	}
	return sink, producer.Close, nil
}

type healthSink struct {
	notification.Sink
	producer *kafka.Producer
}

func (s *healthSink) Health(ctx context.Context) error { return s.producer.Health(ctx) }
