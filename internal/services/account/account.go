// Package account содержит бизнес-логику учётных записей: регистрацию,
// проверку учётных данных и работу с профилем. Сервис не хранит состояния
// между вызовами: подлинность субъекта профильных операций утверждает сам
// вызывающий (в запросе передается userId, серверных сессий нет).
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/socialspark/socialspark-backend/internal/lib/password"
	"github.com/socialspark/socialspark-backend/internal/lib/sl"
	"github.com/socialspark/socialspark-backend/internal/models"
	"github.com/socialspark/socialspark-backend/internal/storage/repository"
)

// Ошибки уровня сервиса. Обработчики переводят их в коды ответа.
var (
	// ErrMissingCredentials — не переданы обязательные email или пароль.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrEmailTaken — на этот email уже зарегистрирована учётная запись.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken — username занят другим пользователем.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials возвращается и для неизвестного email, и для
	// неверного пароля: по ответу нельзя понять, какая проверка не прошла.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound — нет пользователя для заданного ключа.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID или ошибку, если не найден.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateUserProfile перезаписывает изменяемые поля профиля.
	UpdateUserProfile(ctx context.Context, id int64, fullName, username, bio, city string) error
}

// Cache описывает методы для кэширования профилей.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// RegisterParams — входные данные регистрации.
type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Username string
	City     string
}

// UpdateProfileParams — изменяемые поля профиля. Семантика полной замены:
// записывается каждое поле, включая пустые значения.
type UpdateProfileParams struct {
	FullName string
	Username string
	Bio      string
	City     string
}

// Service реализует операции над учётными записями.
type Service struct {
	users        UserRepository
	cache        Cache
	log          *slog.Logger
	storeTimeout time.Duration
	cacheTTL     time.Duration
}

// New создает новый экземпляр Service. storeTimeout ограничивает каждое
// обращение к хранилищу, cacheTTL — время жизни профиля в кэше.
func New(users UserRepository, cache Cache, log *slog.Logger, storeTimeout, cacheTTL time.Duration) *Service {
	return &Service{
		users:        users,
		cache:        cache,
		log:          log,
		storeTimeout: storeTimeout,
		cacheTTL:     cacheTTL,
	}
}

// Register создает нового пользователя с bcrypt-хэшом пароля и возвращает
// сохранённую запись. Существование email не проверяется заранее — при
// дубликате срабатывает уникальный индекс базы, ошибка которого
// переводится в ErrEmailTaken.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if p.Email == "" || p.Password == "" {
		return nil, ErrMissingCredentials
	}

	hashed, err := password.GetHash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	id, err := s.users.CreateUser(ctx, models.User{
		Email:        p.Email,
		PasswordHash: hashed,
		Username:     p.Username,
		FullName:     p.FullName,
		City:         p.City,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info("registered new user", slog.Int64("id", id))

	// перечитываем строку, чтобы вернуть поля, назначенные базой (created_at)
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate проверяет учётные данные по email. Отсутствие пользователя
// и несовпадение пароля дают один и тот же ответ ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	if email == "" || rawPassword == "" {
		return nil, ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetProfileByID возвращает профиль по ID, используя кеш или репозиторий.
func (s *Service) GetProfileByID(ctx context.Context, id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("profile:id:%d", id)

	var cached *models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read profile cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, user, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache profile", slog.String("key", cacheKey), sl.Err(err))
	}
	return user, nil
}

// GetProfileByEmail возвращает профиль по email. Кэш не задействован:
// email — изменяемый с точки зрения будущих версий ключ, кэшируем только по ID.
func (s *Service) GetProfileByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile полностью перезаписывает изменяемые поля профиля,
// инвалидирует кеш и возвращает обновлённую запись.
func (s *Service) UpdateProfile(ctx context.Context, id int64, p UpdateProfileParams) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	err := s.users.UpdateUserProfile(ctx, id, p.FullName, p.Username, p.Bio, p.City)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrUserExists):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	cacheKey := fmt.Sprintf("profile:id:%d", id)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate profile cache", slog.String("key", cacheKey), sl.Err(err))
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated user profile", slog.Int64("id", id))
	return user, nil
}
