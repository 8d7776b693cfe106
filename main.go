package main

import (
	"context"
	"database/sql"
	"errors"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yumyai/protparam/internal/config"
	"github.com/yumyai/protparam/internal/util"
	"github.com/yumyai/protparam/logger"
	mydb "github.com/yumyai/protparam/pkg/db"
	"github.com/yumyai/protparam/pkg/handler"
	"github.com/yumyai/protparam/pkg/middle"
	"go.uber.org/zap"
)

const (
	VERSION = "0.1.0"

	batchJobTTL     = time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {

	// Try load env
	dotenvErr := godotenv.Load()

	cfg := config.FromEnv()

	// Establish logger
	if err := logger.InitLogger(logger.ParseLevel(cfg.LogLevel)); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}
	for _, key := range cfg.Defaulted {
		logger.Debug("Environment variable not set, using default", zap.String("key", key))
	}

	logger.Info("Start:", zap.String("Version", VERSION))

	var db *sql.DB
	if cfg.History {
		var err error
		db, err = openHistory(cfg)
		if err != nil {
			logger.Fatal("Cannot open history database", zap.Error(err))
		}
		defer db.Close()
	} else {
		logger.Info("History disabled, analyses will not be stored")
	}

	dbctx := &handler.DBContext{
		DB:        db,
		BatchJobs: handler.NewBatchJobManager(batchJobTTL),
		Version:   VERSION,
	}

	mux := handler.NewRouter(dbctx)
	setupStaticFiles(mux, filepath.Join(cfg.DataDir, "static"))

	// Apply middleware
	base := logger.Get()
	h := middle.Chain(mux,
		middle.RequestIDMiddleware(base),
		middle.LoggingMiddleware(base),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Error starting server:", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func openHistory(cfg *config.Config) (*sql.DB, error) {
	dbPath := cfg.HistoryDB()
	if err := util.EnsureDir(path.Dir(dbPath)); err != nil {
		return nil, err
	}

	logger.Info("Open database on", zap.String("DB_LOC", dbPath))
	return mydb.Open(dbPath)
}

// Serve dir under /static/ when it exists
func setupStaticFiles(mux *http.ServeMux, dir string) {
	if !util.DirExists(dir) {
		return
	}
	_ = mime.AddExtensionType(".js", "text/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	fs := http.FileServer(http.Dir(dir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))
	logger.Info("Serving static files", zap.String("dir", dir))
}
