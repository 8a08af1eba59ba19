package api

import (
	_ "nexrates/docs"
	"nexrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/latest", rateHandler.GetLatest)
	router.Get("/api/history", rateHandler.GetHistory)
	router.Get("/api/currencies", rateHandler.GetSupportedCodes)
	router.Get("/api/{date:[0-9]{4}-[0-9]{2}-[0-9]{2}}", rateHandler.GetByDate)
	return router
}
