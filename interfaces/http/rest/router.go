// Package rest wires the chi router, middleware chain and HTTP handlers.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"clubgraph/application/commands/bus"
	querybus "clubgraph/application/queries/bus"
	"clubgraph/interfaces/http/rest/handlers"
	"clubgraph/interfaces/http/rest/middleware"
	"clubgraph/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	validator  *auth.JWTValidator
	enableCORS bool
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	validator *auth.JWTValidator,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		validator:  validator,
		enableCORS: enableCORS,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.clubgraph.io"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		clubHandler := handlers.NewClubHandler(rt.commandBus, rt.queryBus, rt.logger)
		connectionHandler := handlers.NewConnectionHandler(rt.commandBus, rt.logger)
		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.logger)

		r.Route("/clubs", func(r chi.Router) {
			r.Get("/", clubHandler.ListClubs)
			r.Post("/", clubHandler.CreateClub)
			r.Get("/{clubID}", clubHandler.GetClub)
			r.Put("/{clubID}", clubHandler.UpdateClub)
			r.Delete("/{clubID}", clubHandler.DeleteClub)
			r.Get("/{clubID}/connections", clubHandler.ListClubConnections)
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/", connectionHandler.CreateConnection)
			r.Put("/{connectionID}", connectionHandler.UpdateConnection)
			r.Delete("/{connectionID}", connectionHandler.DeleteConnection)
		})

		r.Get("/graph-data", graphHandler.GetGraphData)
		r.Get("/dashboard-stats", graphHandler.GetDashboardStats)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
