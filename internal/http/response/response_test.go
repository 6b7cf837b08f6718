package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialspark/socialspark-backend/internal/models"
)

func TestRegistered(t *testing.T) {
	user := models.PublicUser{ID: 3, Email: "a@b.c", FullName: "A B", Username: "ab", City: "X"}
	resp := Registered(user)

	assert.True(t, resp.Success)
	assert.Equal(t, "User registered!", resp.Message)
	assert.Equal(t, int64(3), resp.UserID)
	assert.Equal(t, user, resp.User)
}

func TestError(t *testing.T) {
	raw, err := json.Marshal(Error("invalid credentials"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"invalid credentials"}`, string(raw))
}

func TestProfileOmitsEmptyFields(t *testing.T) {
	resp := Profile(models.UserProfile{ID: 1, Email: "a@b.c"})
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "message")
	assert.NotContains(t, m, "error")
	assert.NotContains(t, m, "userId")
}

func TestValidationError(t *testing.T) {
	type req struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	err := validator.New().Struct(req{Email: "not-an-email"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "field Email must be a valid email address")
	assert.Contains(t, resp.Error, "field Password is a required field")
}
