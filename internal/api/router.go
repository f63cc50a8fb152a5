package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/poro/summoner-reviews/internal/api/handlers"
	"github.com/poro/summoner-reviews/internal/api/middleware"
	"github.com/poro/summoner-reviews/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(services.Player)
	summonerHandler := handlers.NewSummonerHandler(services.Player)
	reviewHandler := handlers.NewReviewHandler(services.Review)
	statsHandler := handlers.NewStatsHandler(services.Player, services.Review)

	r.Get("/players/search", playerHandler.Search)
	r.Get("/summoner", summonerHandler.Lookup)

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.List)
		r.Post("/", reviewHandler.Create)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/recent-reviews", statsHandler.RecentReviews)
		r.Get("/trending", statsHandler.Trending)
	})

	return r
}
