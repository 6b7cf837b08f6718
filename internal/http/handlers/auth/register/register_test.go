package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/socialspark/socialspark-backend/internal/models"
	"github.com/socialspark/socialspark-backend/internal/services/account"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, p account.RegisterParams) (*models.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	stored := &models.User{
		ID:       7,
		Email:    "new@example.com",
		FullName: "New User",
		Username: "newuser",
		City:     "Riga",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Email:    "new@example.com",
				Password: "secret123",
				FullName: "New User",
				Username: "newuser",
				City:     "Riga",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, account.RegisterParams{
					Email:    "new@example.com",
					Password: "secret123",
					FullName: "New User",
					Username: "newuser",
					City:     "Riga",
				}).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"userId":7`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name: "отсутствует email",
			requestBody: Request{
				Password: "secret123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email is a required field`,
		},
		{
			name: "отсутствует пароль",
			requestBody: Request{
				Email: "new@example.com",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Password is a required field`,
		},
		{
			name: "email уже занят",
			requestBody: Request{
				Email:    "new@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(nil, account.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"email already registered"`,
		},
		{
			name: "ошибка хранилища",
			requestBody: Request{
				Email:    "new@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.expectedBody),
				"body %q does not contain %q", rec.Body.String(), tt.expectedBody)
			// хэш или пароль никогда не попадают в ответ
			assert.NotContains(t, rec.Body.String(), "secret123")
			mockService.AssertExpectations(t)
		})
	}
}
