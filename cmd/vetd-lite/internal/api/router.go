// Package api wires the vetd-lite HTTP surface: the flat JSON REST
// contract the client library speaks, plus health and metrics
// endpoints for local development.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Duhandrade22/vet-system/cmd/vetd-lite/internal/store"
)

const version = "1.0.0"

// NewRouter builds the full middleware stack and route table.
func NewRouter(st *store.Store, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logging(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	h := &handlers{store: st}

	// Public endpoints
	r.Post("/users", h.register)
	r.Post("/login", h.login)

	// Everything else requires a bearer token
	r.Group(func(r chi.Router) {
		r.Use(auth(st))

		r.Route("/owners", func(r chi.Router) {
			r.Get("/", h.listOwners)
			r.Post("/", h.createOwner)
			r.Get("/{id}", h.getOwner)
			r.Patch("/{id}", h.updateOwner)
			r.Delete("/{id}", h.deleteOwner)
		})

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", h.listAnimals)
			r.Post("/", h.createAnimal)
			r.Get("/{id}", h.getAnimal)
			r.Patch("/{id}", h.updateAnimal)
			r.Delete("/{id}", h.deleteAnimal)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Post("/", h.createRecord)
			r.Get("/{id}", h.getRecord)
			r.Patch("/{id}", h.updateRecord)
			r.Delete("/{id}", h.deleteRecord)
		})
	})

	return r
}
