// Package get реализует HTTP-обработчик чтения профиля.
//
// Ключ выборки — userId или email из строки запроса; email имеет приоритет,
// как в исходном контракте. В ответе дата создания отдается как joined_date.
package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/socialspark/socialspark-backend/internal/http/response"
	"github.com/socialspark/socialspark-backend/internal/lib/sl"
	"github.com/socialspark/socialspark-backend/internal/models"
	"github.com/socialspark/socialspark-backend/internal/services/account"
)

// Service описывает интерфейс чтения профиля.
type Service interface {
	GetProfileByID(ctx context.Context, id int64) (*models.User, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы чтения профиля.
type Handler struct {
	log      *slog.Logger
	accounts Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accounts Service) *Handler {
	return &Handler{
		log:      log,
		accounts: accounts,
	}
}

// ServeHTTP godoc
// @Summary Чтение профиля
// @Description Возвращает профиль по userId или email. Дата создания отдается как joined_date.
// @Tags Profile
// @Produce  json
// @Param userId query int false "ID пользователя"
// @Param email query string false "Email пользователя"
// @Success 200 {object} response.Response "Профиль пользователя"
// @Failure 400 {object} response.Response "Не передан ключ выборки"
// @Failure 404 {object} response.Response "Пользователь не найден"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /api/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	rawUserID := r.URL.Query().Get("userId")

	var user *models.User
	var err error
	switch {
	case email != "":
		user, err = h.accounts.GetProfileByEmail(r.Context(), email)
	case rawUserID != "":
		var id int64
		id, err = strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			log.Error("failed to parse userId", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid userId"))
			return
		}
		user, err = h.accounts.GetProfileByID(r.Context(), id)
	default:
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("userId or email is required"))
		return
	}

	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
			return
		}
		log.Error("failed to fetch profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	render.JSON(w, r, response.Profile(models.NewUserProfile(user)))
}
