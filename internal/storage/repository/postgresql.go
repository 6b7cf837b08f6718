// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями. Предоставляет методы создания, чтения
// и обновления учётных записей; единственная защита от гонок при
// регистрации — уникальный индекс по email на стороне базы.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"database/sql"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Сигнальные ошибки хранилища. Сервисный слой переводит их в свои виды
// через errors.Is, текст запроса и сырой код ошибки наружу не уходят.
var (
	// ErrUserExists — нарушение уникальности (email или username уже заняты).
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — нет строки для заданного ключа.
	ErrUserNotFound = errors.New("user not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт пул подключений к PostgreSQL и проверяет доступность базы.
// Размер пула ограничивает композиционный корень через SetMaxOpenConns.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Now возвращает текущее время базы данных. Используется пробой /api/test-db
// как проверка связности.
func (s *Storage) Now(ctx context.Context) (time.Time, error) {
	const op = "storage.Now"

	var now time.Time
	if err := s.DB.QueryRowContext(ctx, "SELECT now()").Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return now, nil
}
