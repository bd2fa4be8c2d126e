package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/organizador-api/internal/handler"
)

// NewRouter собирает маршруты /tarefa и служебный /health
func NewRouter(tasks *handler.TaskHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Route("/tarefa", func(r chi.Router) {
		// статические пути имеют приоритет над /{id}
		r.Get("/ObterTodos", tasks.List)
		r.Get("/ObterPorTitulo", tasks.ListByTitle)
		r.Get("/ObterPorData", tasks.ListByDate)
		r.Get("/ObterPorStatus", tasks.ListByStatus)

		r.Post("/", tasks.Create)
		r.Get("/{id}", tasks.Get)
		r.Put("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
	})

	return r
}

// RequestLogger пишет одну строку zap на каждый запрос
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("took", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
