package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/handlers"
	"github.com/Totarae/URLShortenerGateway/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор шлюза
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS)
	r.Use(middleware.DecompressRequest)
	r.Use(chimw.Compress(5)) // Gzip-сжатие ответов

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	for _, path := range []string{"/shorten", "/api/shorten"} {
		r.Post(path, handler.Shorten)
		r.Options(path, handler.Preflight)
	}
	r.Get("/ping", handler.Ping)

	return r
}
