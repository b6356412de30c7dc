package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/project/studentlibrary/config"
	"github.com/project/studentlibrary/internal/controller"
	"github.com/project/studentlibrary/internal/usecase/library"
	"github.com/project/studentlibrary/internal/usecase/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	serviceName             = "library"
	shutDownSeconds         = 3
	readHeaderTimeoutSecond = 5
)

// Run loads the documents, serves the menu on in and out until the operator
// quits, and saves whatever is still unsaved.
func Run(ctx context.Context, logger *zap.Logger, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := setupTracing(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTracing()

	if cfg.Observability.MetricsPort != "" {
		stopMetrics := runMetrics(cfg, logger)
		defer stopMetrics()
	}

	storage := repository.NewFileStorage(layerLogger(logger, cfg.Log.LogRepo), afero.NewOsFs(), repository.Paths{
		Books:    cfg.Storage.BooksFile,
		Students: cfg.Storage.StudentsFile,
		Loans:    cfg.Storage.LoansFile,
	})
	if err = storage.Load(); err != nil {
		return err
	}

	transactor := repository.NewTransactor(layerLogger(logger, cfg.Log.LogTransactor), storage)

	useCases := library.New(
		layerLogger(logger, cfg.Log.LogUseCase),
		storage.Catalog(),
		storage.Roster(),
		storage.Ledger(),
		transactor,
	)

	shell := controller.New(
		layerLogger(logger, cfg.Log.LogController),
		useCases,
		useCases,
		useCases,
		in,
		out,
		controller.WithSeed(cfg.Shell.SeedDefaults),
	)

	// A signal ends the session even while the shell waits for input.
	done := make(chan error, 1)
	go func() {
		done <- shell.Serve(ctx)
	}()

	var serveErr error
	select {
	case serveErr = <-done:
	case <-ctx.Done():
		logger.Info("interrupted, saving state")
	}

	if err = transactor.Flush(); err != nil {
		logger.Error("final save failed", zap.Error(err))
	}

	return errors.Join(serveErr, err)
}

// layerLogger returns logger when the layer's logging is enabled.
func layerLogger(logger *zap.Logger, enabled bool) *zap.Logger {
	if enabled {
		return logger
	}
	return nil
}

// setupTracing installs the global tracer provider so every action gets a
// trace id. Spans are exported only when a Jaeger collector is configured.
func setupTracing(cfg *config.Config, logger *zap.Logger) (func(), error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	}

	if cfg.Observability.JaegerURL != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.Error("can not shut down tracer provider", zap.Error(err))
		}
	}, nil
}

func runMetrics(cfg *config.Config, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + cfg.Observability.MetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeoutSecond * time.Second,
	}

	go func() {
		logger.Info("metrics listening at port", zap.String("port", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listen error", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
