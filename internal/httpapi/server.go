package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"suited/internal/coordinator"
	"suited/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	RegisterSuite(ctx context.Context, cfg types.SuiteConfig) error
	LoadSuite(ctx context.Context, name string, forceReload bool) error
	UnloadSuite(ctx context.Context, name string) error
	Checkout(name string) error
	Release(name string) error
	OptimizeMemory(ctx context.Context) (types.OptimizeReport, error)
	Cleanup(ctx context.Context) (types.CleanupReport, error)
	Status() types.StatusResponse
	SuiteStatus(name string) (types.SuiteStatus, error)
	ListSuites() []types.SuiteConfig
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	r.Use(requestLogMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Get("/suites", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.SuitesResponse{Suites: svc.ListSuites()})
	})

	r.Post("/suites", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var cfg types.SuiteConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if err := svc.RegisterSuite(ctx, cfg); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	r.Get("/suites/{name}", func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.SuiteStatus(chi.URLParam(r, "name"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	})

	r.Post("/suites/{name}/load", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		force := r.URL.Query().Get("force") == "1" || r.URL.Query().Get("force") == "true"
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		start := time.Now()
		if err := svc.LoadSuite(ctx, name, force); err != nil {
			// Client disconnect or shutdown: the coordinator already rolled back.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			writeServiceError(w, err)
			return
		}
		zlog.Info().Str("suite", name).Dur("dur", time.Since(start)).Msg("load request done")
		st, err := svc.SuiteStatus(name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	})

	r.Post("/suites/{name}/unload", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if err := svc.UnloadSuite(ctx, chi.URLParam(r, "name")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/suites/{name}/checkout", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Checkout(chi.URLParam(r, "name")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/suites/{name}/release", func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Release(chi.URLParam(r, "name")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Post("/optimize", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		report, err := svc.OptimizeMemory(ctx)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	})

	r.Post("/cleanup", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		report, err := svc.Cleanup(ctx)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// writeJSON encodes v with a JSON content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Error().Err(err).Msg("failed to encode response")
	}
}

// writeServiceError maps well-known coordinator errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case coordinator.IsSuiteNotFound(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case coordinator.IsSuiteBusy(err):
		writeJSONError(w, http.StatusConflict, err.Error())
	case coordinator.IsInsufficientMemory(err):
		writeJSONError(w, http.StatusInsufficientStorage, err.Error())
	case coordinator.IsConfigValidation(err):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	case coordinator.IsComponentLoad(err), coordinator.IsSuiteIntegrity(err):
		writeJSONError(w, http.StatusBadGateway, err.Error())
	default:
		if he, ok := err.(HTTPError); ok {
			writeJSONError(w, he.StatusCode(), he.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
