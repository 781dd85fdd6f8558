// Package main is the entry point for the palette server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plotcycle/server/internal/api"
	"github.com/plotcycle/server/internal/cache"
	"github.com/plotcycle/server/internal/config"
	"github.com/plotcycle/server/internal/render"
	"github.com/plotcycle/server/internal/service"
	"github.com/plotcycle/server/pkg/colormap"
	"github.com/plotcycle/server/pkg/cycle"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting palette server on port %d", cfg.Server.Port)

	// Load extra colormap definitions
	if cfg.Colormaps.Dir != "" {
		names, err := colormap.LoadDir(cfg.Colormaps.Dir)
		if err != nil {
			log.Fatalf("Failed to load colormaps from %s: %v", cfg.Colormaps.Dir, err)
		}
		if len(names) > 0 {
			log.Printf("Loaded %d colormap(s) from %s: %v", len(names), cfg.Colormaps.Dir, names)
		}
	}

	// Apply sampling-window overrides
	for name, w := range cfg.Windows {
		if err := cycle.SetDefaultWindow(name, cycle.Window{Start: w.Start, Stop: w.Stop}); err != nil {
			log.Fatalf("Invalid window override for %q: %v", name, err)
		}
	}
	log.Printf("Registered colormaps: %v", colormap.Names())

	if _, ok := colormap.Lookup(cfg.Render.DefaultColormap); !ok {
		log.Fatalf("Default colormap %q is not registered", cfg.Render.DefaultColormap)
	}

	// Initialize cache manager
	cacheManager, err := cache.NewManager(cache.Config{
		ImageCacheSizeMB: cfg.Cache.ImageSizeMB,
		ImageTTL:         time.Duration(cfg.Cache.ImageTTLMinutes) * time.Minute,
		PaletteCacheSize: cfg.Cache.PaletteCacheSize,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	// Initialize swatch renderer
	renderer := render.NewSwatchRenderer(render.Config{
		Width:  cfg.Render.SwatchWidth,
		Height: cfg.Render.SwatchHeight,
	})

	// Initialize palette service
	paletteService := service.NewPaletteService(service.PaletteServiceConfig{
		DefaultColormap: cfg.Render.DefaultColormap,
		DefaultLength:   cfg.Render.DefaultLength,
		Cache:           cacheManager,
		Renderer:        renderer,
	})

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Service:     paletteService,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
