// Package main boots the Catalog JSON API HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"catalogapi/internal/catalog"
	"catalogapi/internal/config"
	httpapi "catalogapi/internal/http"
	"catalogapi/internal/model"
	"catalogapi/internal/obs"
	"catalogapi/internal/store"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var err error
		if cfg, err = cfg.ApplyFile(path); err != nil {
			obs.Logger.Error("config_file_error", "path", path, "error", err)
			os.Exit(1)
		}
	}
	obs.Logger.Info("service_starting", "data_dir", cfg.DataDir)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		obs.Logger.Error("data_dir_error", "error", err)
		os.Exit(1)
	}
	products, err := store.Open(filepath.Join(cfg.DataDir, "products.json"), "products", catalog.SeedProducts())
	if err != nil {
		obs.Logger.Error("store_open_error", "collection", "products", "error", err)
		os.Exit(1)
	}
	packages, err := store.Open(filepath.Join(cfg.DataDir, "packages.json"), "packages", catalog.SeedBasePackages())
	if err != nil {
		obs.Logger.Error("store_open_error", "collection", "packages", "error", err)
		os.Exit(1)
	}
	custom, err := store.Open(filepath.Join(cfg.DataDir, "custom_packages.json"), "packages", []model.CustomPackage{})
	if err != nil {
		obs.Logger.Error("store_open_error", "collection", "custom_packages", "error", err)
		os.Exit(1)
	}

	app := httpapi.NewApp(cfg, products, packages, custom)
	handler := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
