package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(apiHandler *APIHandler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// All API routes live under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/", apiHandler.RootHandler)
		r.Get("/health", apiHandler.HealthHandler)

		r.Post("/users", apiHandler.CreateUserHandler)
		r.Get("/users/{userID}", apiHandler.GetUserHandler)

		r.Post("/chat", apiHandler.ChatHandler)
		r.Get("/chat/{userID}", apiHandler.ChatHistoryHandler)

		r.Post("/upload", apiHandler.UploadHandler)
		r.Get("/files/{userID}", apiHandler.ListFilesHandler)

		r.Post("/websearch", apiHandler.WebSearchHandler)
		r.Get("/search/{userID}", apiHandler.SearchHistoryHandler)
	})

	return r
}
