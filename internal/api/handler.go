// Package api implements the HTTP surface of the service: user
// registration/login and CRUD over users and calculations.
package api

import (
	"net/http"

	"calc-service/internal/auth"
	"calc-service/internal/logger"
	"calc-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler bundles the HTTP endpoints with their collaborators.
type Handler struct {
	users        *storage.UserRepository
	calculations *storage.CalculationRepository
	tokens       *auth.TokenManager
	log          *logger.Logger
}

func NewHandler(users *storage.UserRepository, calculations *storage.CalculationRepository, tokens *auth.TokenManager, log *logger.Logger) *Handler {
	return &Handler{
		users:        users,
		calculations: calculations,
		tokens:       tokens,
		log:          log,
	}
}

// Routes mounts every endpoint. User mutations require a valid token;
// calculations stay open so anonymous calculations remain possible.
func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/health", h.health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.registerUser)
		r.Post("/login", h.loginUser)
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Group(func(r chi.Router) {
			r.Use(h.tokens.Middleware)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	r.Route("/calculations", func(r chi.Router) {
		r.Post("/", h.createCalculation)
		r.Get("/", h.listCalculations)
		r.Get("/{id}", h.getCalculation)
		r.Put("/{id}", h.updateCalculation)
		r.Delete("/{id}", h.deleteCalculation)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Application is running",
	})
}
