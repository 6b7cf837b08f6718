package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialspark/socialspark-backend/internal/models"
)

func uniqueEmail() string {
	return fmt.Sprintf("user-%s@example.com", uuid.New().String())
}

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	email := uniqueEmail()
	id, err := storage.CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Username:     "newuser",
		FullName:     "New User",
		City:         "Riga",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := storage.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
	assert.Equal(t, "newuser", got.Username)
	assert.False(t, got.CreatedAt.IsZero(), "created_at must be assigned by the database")
}

func TestStorage_CreateUser_DuplicateEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	email := uniqueEmail()
	_, err := storage.CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
	})
	require.NoError(t, err)

	_, err = storage.CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: "otherhash",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserExists)

	factory := NewTestDataFactory(storage)
	assert.Equal(t, 1, factory.CountUsersByEmail(t, email), "no partial or duplicate row may remain")
}

func TestStorage_CreateUser_ConcurrentDuplicates(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	email := uniqueEmail()
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = storage.CreateUser(context.Background(), models.User{
				Email:        email,
				PasswordHash: "hashedpassword",
			})
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrUserExists):
			conflicted++
		default:
			t.Fatalf("unexpected error from concurrent CreateUser: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent registration must win")
	assert.Equal(t, workers-1, conflicted)

	factory := NewTestDataFactory(storage)
	assert.Equal(t, 1, factory.CountUsersByEmail(t, email))
}

func TestStorage_GetUserByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	email := uniqueEmail()
	id := factory.CreateUser(t, models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Username:     "lookup",
		FullName:     "Look Up",
		Bio:          "bio text",
		City:         "Oslo",
	})

	byEmail, err := storage.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	byID, err := storage.GetUserByID(context.Background(), id)
	require.NoError(t, err)

	// обе выборки возвращают идентичную запись
	assert.Equal(t, byID, byEmail)
	assert.Equal(t, "hashedpassword", byEmail.PasswordHash)

	_, err = storage.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_GetUserByID_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUserByID(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateUserProfile(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	email := uniqueEmail()
	id := factory.CreateUser(t, models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Username:     "before",
		FullName:     "Before Update",
		Bio:          "old bio",
		City:         "Old Town",
	})

	before, err := storage.GetUserByID(context.Background(), id)
	require.NoError(t, err)

	err = storage.UpdateUserProfile(context.Background(), id, "After Update", "after", "new bio", "New Town")
	require.NoError(t, err)

	got, err := storage.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "After Update", got.FullName)
	assert.Equal(t, "after", got.Username)
	assert.Equal(t, "new bio", got.Bio)
	assert.Equal(t, "New Town", got.City)

	// email, хэш и дата создания не изменяются при обновлении профиля
	assert.Equal(t, email, got.Email)
	assert.Equal(t, "hashedpassword", got.PasswordHash)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
}

func TestStorage_UpdateUserProfile_EmptyValuesOverwrite(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	id := factory.CreateUser(t, models.User{
		Email:        uniqueEmail(),
		PasswordHash: "hashedpassword",
		Username:     "gone",
		FullName:     "Full Name",
		Bio:          "bio",
		City:         "city",
	})

	// полная замена: пустые значения затирают прежние
	require.NoError(t, storage.UpdateUserProfile(context.Background(), id, "", "", "", ""))

	got, err := storage.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, got.FullName)
	assert.Empty(t, got.Username)
	assert.Empty(t, got.Bio)
	assert.Empty(t, got.City)
}

func TestStorage_UpdateUserProfile_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	err := storage.UpdateUserProfile(context.Background(), 99999, "Name", "nick", "bio", "city")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateUserProfile_DuplicateUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, models.User{
		Email:        uniqueEmail(),
		PasswordHash: "hashedpassword",
		Username:     "taken",
	})
	id := factory.CreateUser(t, models.User{
		Email:        uniqueEmail(),
		PasswordHash: "hashedpassword",
		Username:     "free",
	})

	err := storage.UpdateUserProfile(context.Background(), id, "", "taken", "", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestStorage_Now(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	now, err := storage.Now(context.Background())
	require.NoError(t, err)
	assert.False(t, now.IsZero())
}
