// Package health реализует пробу связности с базой данных.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/socialspark/socialspark-backend/internal/http/response"
	"github.com/socialspark/socialspark-backend/internal/lib/sl"
)

// Pinger описывает проверку доступности хранилища.
type Pinger interface {
	Now(ctx context.Context) (time.Time, error)
}

// Response — ответ пробы с текущим временем базы.
type Response struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler обрабатывает запросы /api/test-db.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{log: log, db: db}
}

// ServeHTTP godoc
// @Summary Проверка базы данных
// @Description Выполняет запрос текущего времени к базе и возвращает его.
// @Tags Health
// @Produce  json
// @Success 200 {object} Response "База доступна"
// @Failure 500 {object} response.Response "База недоступна"
// @Router /api/test-db [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	now, err := h.db.Now(r.Context())
	if err != nil {
		h.log.Error("database probe failed", slog.String("op", op), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("database unavailable"))
		return
	}
	render.JSON(w, r, Response{Success: true, Timestamp: now})
}
