// Package models содержит доменную модель пользователя и его представления
// для внешнего API. Конструкторы представлений — единственное место, где
// колонки хранилища переименовываются в поля внешнего контракта
// (created_at → joined_date, full_name → fullName).
package models

import "time"

// User представляет строку таблицы users.
type User struct {
	ID           int64     // Суррогатный первичный ключ, назначается базой
	Email        string    // Логин-идентификатор, уникальный
	PasswordHash string    // bcrypt-хэш пароля, никогда не отдается наружу
	Username     string    // Отображаемый ник, пустая строка = NULL в базе
	FullName     string    // Полное имя
	Bio          string    // О себе
	City         string    // Город
	CreatedAt    time.Time // Выставляется базой при вставке, неизменяемо
}

// PublicUser — представление пользователя в ответах register/login.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	City     string `json:"city"`
}

// UserProfile — представление пользователя в ответах профиля.
// Дата создания отдается наружу как joined_date, имя колонки не утекает.
type UserProfile struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Username   string    `json:"username"`
	Bio        string    `json:"bio"`
	City       string    `json:"city"`
	JoinedDate time.Time `json:"joined_date"`
}

// NewPublicUser строит PublicUser из доменной модели.
func NewPublicUser(u *User) PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Username: u.Username,
		City:     u.City,
	}
}

// NewUserProfile строит UserProfile из доменной модели.
func NewUserProfile(u *User) UserProfile {
	return UserProfile{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Username:   u.Username,
		Bio:        u.Bio,
		City:       u.City,
		JoinedDate: u.CreatedAt,
	}
}
