// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков в формате, который
// потребляет фронтенд: {"success": true, ...} при успехе и
// {"success": false, "error": "..."} при отказе.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/socialspark/socialspark-backend/internal/models"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	UserID  int64  `json:"userId,omitempty"`
	User    any    `json:"user,omitempty"`
}

// Registered возвращает ответ успешной регистрации.
func Registered(user models.PublicUser) Response {
	return Response{
		Success: true,
		Message: "User registered!",
		UserID:  user.ID,
		User:    user,
	}
}

// LoggedIn возвращает ответ успешного входа.
func LoggedIn(user models.PublicUser) Response {
	return Response{
		Success: true,
		Message: "Login successful!",
		UserID:  user.ID,
		User:    user,
	}
}

// Profile возвращает ответ с данными профиля.
func Profile(profile models.UserProfile) Response {
	return Response{
		Success: true,
		User:    profile,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Success: false,
		Error:   msg,
	}
}

// ValidationError формирует ответ об ошибке на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Success: false,
		Error:   strings.Join(errsMsgs, ", "),
	}
}
