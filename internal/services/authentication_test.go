package services

import (
	"testing"

	"perkhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthentication_TokenRoundTrip(t *testing.T) {
	authentication, err := NewAuthentication("test-secret")
	require.NoError(t, err)

	user := &models.User{ID: 42, Email: "founder@example.com"}

	token, err := authentication.CreateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userAuth, err := authentication.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userAuth.ID)
	assert.Equal(t, "founder@example.com", userAuth.Email)
}

func TestAuthentication_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewAuthentication("secret-a")
	require.NoError(t, err)
	verifier, err := NewAuthentication("secret-b")
	require.NoError(t, err)

	token, err := issuer.CreateToken(&models.User{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestAuthentication_RejectsGarbageToken(t *testing.T) {
	authentication, err := NewAuthentication("test-secret")
	require.NoError(t, err)

	_, err = authentication.Validate("not-a-jwt")
	assert.Error(t, err)
}

func TestNewAuthentication_EmptySecret(t *testing.T) {
	_, err := NewAuthentication("")
	assert.Error(t, err)
}

func TestAuthentication_PasswordHashing(t *testing.T) {
	authentication, err := NewAuthentication("test-secret")
	require.NoError(t, err)

	hash, err := authentication.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, authentication.CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, authentication.CheckPassword(hash, "wrong-password"))
	assert.False(t, authentication.CheckPassword("", "hunter2hunter2"))
}
