package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"linkora-server/internal/handler"
)

func SetupRoutes(
	r chi.Router,
	static *handler.StaticHandler,
	admin *handler.AdminHandler,
	wsHandler *handler.WSHandler,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", static.Index)
	r.Get("/admin/users", admin.ListUsers)
	r.Get("/ws", wsHandler.HandleWS)

	return r
}
