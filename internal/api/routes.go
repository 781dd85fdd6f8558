// Package api provides HTTP handlers for the palette server.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/plotcycle/server/internal/service"
)

// RouterConfig contains router configuration.
type RouterConfig struct {
	Service     *service.PaletteService
	CORSOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/colormaps", colormapsHandler(cfg.Service))
		r.Get("/colormaps/{name}", colormapInfoHandler(cfg.Service))
		r.Get("/colormaps/{name}/colors", paletteHandler(cfg.Service))
		r.Get("/stats", statsHandler(cfg.Service))
	})

	// Preview endpoints. chi treats '.' as a param delimiter in
	// `{name}.png` patterns, which breaks names containing dots, so
	// each route also has an extensionless fallback and the handlers
	// strip any ".png" suffix themselves.
	r.Get("/swatch/{name}.png", swatchHandler(cfg.Service))
	r.Get("/swatch/{name}", swatchHandler(cfg.Service))
	r.Get("/cycle/{name}.png", cycleHandler(cfg.Service))
	r.Get("/cycle/{name}", cycleHandler(cfg.Service))
	r.Get("/demo/{name}.png", demoHandler(cfg.Service))
	r.Get("/demo/{name}", demoHandler(cfg.Service))

	return r
}

func colormapsHandler(s *service.PaletteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"colormaps": s.Colormaps()})
	}
}

func colormapInfoHandler(s *service.PaletteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := s.Colormap(chi.URLParam(r, "name"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, info)
	}
}

func paletteHandler(s *service.PaletteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := paletteQuery(r, chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := s.Palette(q)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func statsHandler(s *service.PaletteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Stats())
	}
}

func swatchHandler(s *service.PaletteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(chi.URLParam(r, "name"), ".png")
		width, err := intQuery(r, "width", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		height, err := intQuery(r, "height", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := s.Swatch(name, width, height)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writePNG(w, data)
	}
}

func cycleHandler(s *service.PaletteService) http.HandlerFunc {
	return cycleImageHandler(s, s.CycleImage)
}

func demoHandler(s *service.PaletteService) http.HandlerFunc {
	return cycleImageHandler(s, s.DemoImage)
}

func cycleImageHandler(s *service.PaletteService, render func(service.Query, int, int) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(chi.URLParam(r, "name"), ".png")
		q, err := paletteQuery(r, name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		width, err := intQuery(r, "width", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		height, err := intQuery(r, "height", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := render(q, width, height)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writePNG(w, data)
	}
}

func paletteQuery(r *http.Request, name string) (service.Query, error) {
	n, err := intQuery(r, "n", 0)
	if err != nil {
		return service.Query{}, err
	}
	start, err := floatQuery(r, "start")
	if err != nil {
		return service.Query{}, err
	}
	stop, err := floatQuery(r, "stop")
	if err != nil {
		return service.Query{}, err
	}
	return service.Query{Name: name, Length: n, Start: start, Stop: stop}, nil
}

func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("parameter " + key + " must be an integer")
	}
	return v, nil
}

func floatQuery(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("parameter " + key + " must be a number")
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownColormap):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBadParam):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
