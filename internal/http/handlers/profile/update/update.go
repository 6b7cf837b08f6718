// Package update реализует HTTP-обработчик правки профиля.
//
// Субъект утверждается вызывающим: userId берется из тела запроса без
// проверки токена — серверных сессий в контракте нет. Семантика полной
// замены: каждое изменяемое поле перезаписывается, включая пустые значения.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/socialspark/socialspark-backend/internal/http/response"
	"github.com/socialspark/socialspark-backend/internal/lib/sl"
	"github.com/socialspark/socialspark-backend/internal/models"
	"github.com/socialspark/socialspark-backend/internal/services/account"
)

// Request — входные данные правки профиля.
type Request struct {
	UserID   int64  `json:"userId" validate:"required"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	City     string `json:"city"`
}

// Service описывает интерфейс правки профиля.
type Service interface {
	UpdateProfile(ctx context.Context, id int64, p account.UpdateProfileParams) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы правки профиля.
type Handler struct {
	log      *slog.Logger
	accounts Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accounts Service) *Handler {
	return &Handler{
		log:      log,
		accounts: accounts,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Правка профиля
// @Description Полностью перезаписывает изменяемые поля профиля и возвращает обновлённые данные.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body Request true "userId и новые значения полей"
// @Success 200 {object} response.Response "Обновлённый профиль"
// @Failure 400 {object} response.Response "Некорректный JSON, неизвестный userId или занятый username"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /api/profile [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int64("userId", req.UserID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.accounts.UpdateProfile(r.Context(), req.UserID, account.UpdateProfileParams{
		FullName: req.FullName,
		Username: req.Username,
		Bio:      req.Bio,
		City:     req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrUserNotFound):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("User not found"))
		case errors.Is(err, account.ErrUsernameTaken):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("username already taken"))
		default:
			log.Error("failed to update profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal server error"))
		}
		return
	}

	log.Info("profile updated", slog.Int64("id", user.ID))
	render.JSON(w, r, response.Profile(models.NewUserProfile(user)))
}
