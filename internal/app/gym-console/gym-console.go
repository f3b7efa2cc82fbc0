package gymconsole

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/gym-console/internal/cache"
	"github.com/magabrotheeeer/gym-console/internal/config"
	"github.com/magabrotheeeer/gym-console/internal/migrations"
	alertservice "github.com/magabrotheeeer/gym-console/internal/services/alerts"
	attendanceservice "github.com/magabrotheeeer/gym-console/internal/services/attendance"
	eventservice "github.com/magabrotheeeer/gym-console/internal/services/event"
	memberservice "github.com/magabrotheeeer/gym-console/internal/services/member"
	paymentservice "github.com/magabrotheeeer/gym-console/internal/services/payment"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

// App связывает HTTP-сервер консоли с хранилищем и кешем.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение консоли: хранилище, миграции, кеш,
// сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	memberService := memberservice.NewMemberService(db, cacheRedis, logger)
	paymentService := paymentservice.NewPaymentService(db, db, cacheRedis, logger)
	eventService := eventservice.NewEventService(db, logger)
	attendanceService := attendanceservice.NewAttendanceService(db, logger)
	alertsService := alertservice.NewAlertsService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, memberService, paymentService, eventService,
		attendanceService, alertsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
