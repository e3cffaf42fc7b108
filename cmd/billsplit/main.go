package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/fkhayef/billsplit/docs"
	"github.com/fkhayef/billsplit/internal/bill"
	"github.com/fkhayef/billsplit/internal/bill/split"
	"github.com/fkhayef/billsplit/internal/config"
	"github.com/fkhayef/billsplit/internal/logging"
	"github.com/fkhayef/billsplit/internal/prompt"
	mw "github.com/fkhayef/billsplit/pkg/middleware"
	"github.com/fkhayef/billsplit/pkg/response"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load configuration
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}
	defer logger.Sync()

	validator := split.NewDealValidator(cfg.MaxRoommates)
	splitFactory := split.NewSplitStrategyFactory()

	if cfg.Command == config.CommandServe {
		if err := serve(cfg, validator, splitFactory, logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return exitFailed
		}
		return exitOK
	}

	return interactive(cfg, validator, splitFactory, logger, stdin, stdout, stderr)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}

	fallback := zapcore.WarnLevel
	if cfg.Command == config.CommandServe {
		fallback = zapcore.InfoLevel
	}
	return logging.New(level, fallback)
}

func interactive(cfg *config.Config, validator *split.DealValidator, splitFactory *split.Factory, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	allocation, err := validator.Validate(cfg.Roommates, cfg.Deal)
	if err != nil {
		logger.Debug("invalid configuration", zap.Int("roommates", cfg.Roommates), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}
	logger.Debug("configuration loaded",
		zap.Int("roommates", cfg.Roommates),
		zap.Float64s("allocation", allocation),
		zap.Bool("save", cfg.Save),
	)

	service, err := bill.NewService(bill.NewRepository(cfg.ReceiptDir), splitFactory, allocation, bill.Options{
		ColumnWidth: cfg.ColumnWidth,
		Out:         stdout,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}

	session, err := prompt.NewLoop(stdin, stdout, service, logger).Run()
	if errors.Is(err, prompt.ErrQuit) {
		logger.Debug("quit", zap.Int("bills", session.Len()))
		fmt.Fprintln(stdout, "Bye!!!")
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailed
	}

	if cfg.Save {
		path, err := service.SaveReceipt(context.Background(), session)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailed
		}
		fmt.Fprintf(stdout, "Receipt saved to %s\n", path)
	}

	fmt.Fprintln(stdout, "Bye!!!")
	return exitOK
}

func newRouter(billHandler *bill.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Mount("/api/v1", billHandler.Routes())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}

func serve(cfg *config.Config, validator *split.DealValidator, splitFactory *split.Factory, logger *zap.Logger) error {
	billHandler := bill.NewHandler(validator, splitFactory, cfg.ColumnWidth, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(billHandler, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
