package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router   chi.Router
	httpSrv  *http.Server
	starters []Starter
	workers  []Worker
	closers  []Closer
	pingers  []Pinger

	group *errgroup.Group
	done  <-chan struct{}
}

func New(logger *slog.Logger, cfg config.Config, auth *middleware.Auth) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics(prometheus.DefaultRegisterer, "/metrics", "/health"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(auth.Optional)

	a := &application{
		logger: logger.With(slog.String("component", "app")),
		router: router,
	}

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", a.health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	a.httpSrv = &http.Server{
		Handler:           otelhttp.NewHandler(router, "checkout"),
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: cfg.Http.ReadHeaderTimeout,
	}

	return a
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Starter is started once before the server accepts requests.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// Worker runs in the background until ctx is done.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

func (a *application) SetWorkers(workers ...Worker) {
	a.workers = workers
}

type Closer interface {
	Close() error
}

// SetClosers registers resources released after the server has stopped.
func (a *application) SetClosers(closers ...Closer) {
	a.closers = closers
}

type Pinger interface {
	Ping(ctx context.Context) error
}

func (a *application) SetPingers(pingers ...Pinger) {
	a.pingers = pingers
}

func (a *application) Start(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to start: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range a.workers {
		w := w
		g.Go(func() error {
			if err := w.Run(gctx); err != nil {
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
			return nil
		})
	}
	g.Go(a.startServer)
	a.group = g
	a.done = gctx.Done()

	a.logger.Info("application started")
	return nil
}

// Done is closed when the context passed to Start ends or when the server or
// a worker fails. Stop reports the failure.
func (a *application) Done() <-chan struct{} {
	return a.done
}

func (a *application) startServer() error {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

// Stop shuts the server down and waits for the workers, whose context is
// the one passed to Start.
func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

func (a *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, p := range a.pingers {
		if err := p.Ping(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
			utils.WriteError(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
