package socialspark

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/socialspark/socialspark-backend/internal/http/handlers/auth/login"
	"github.com/socialspark/socialspark-backend/internal/http/handlers/auth/register"
	"github.com/socialspark/socialspark-backend/internal/http/handlers/health"
	profileget "github.com/socialspark/socialspark-backend/internal/http/handlers/profile/get"
	profileupdate "github.com/socialspark/socialspark-backend/internal/http/handlers/profile/update"
	"github.com/socialspark/socialspark-backend/internal/services/account"
	"github.com/socialspark/socialspark-backend/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Профильные маршруты открыты: подлинность субъекта утверждает вызывающий
// (userId в запросе), серверных сессий и токенов в контракте нет.
func RegisterRoutes(r chi.Router, logger *slog.Logger, accountService *account.Service, db *repository.Storage) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/test-db", health.New(logger, db).ServeHTTP)
		r.Post("/register", register.New(logger, accountService).ServeHTTP)
		r.Post("/login", login.New(logger, accountService).ServeHTTP)
		r.Get("/profile", profileget.New(logger, accountService).ServeHTTP)
		r.Patch("/profile", profileupdate.New(logger, accountService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
