package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	u, token, err := s.Register(RegisterInput{
		Email:    "mary@example.com",
		Name:     "Mary Major",
		Phone:    "+1555000555",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Contains(t, u.ID, "user-")
	assert.True(t, u.IsActive)

	loggedIn, token2, err := s.Login("MARY@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, loggedIn.ID)
	assert.NotEmpty(t, token2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	_, _, err := s.Register(RegisterInput{
		Email:    "john@example.com", // seeded account
		Name:     "Someone Else",
		Phone:    "+1555000555",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	_, _, err := s.Login("john@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeededAccounts(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	u, _, err := s.Login("john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	a, token, err := s.LoginAdmin("admin@bookease.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", a.ID)
	assert.NotEmpty(t, token)

	_, _, err = s.LoginAdmin("admin@bookease.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	_, token, err := s.Login("john@example.com", "password123")
	require.NoError(t, err)

	assert.False(t, s.IsRevoked(token))
	s.Logout(token)
	assert.True(t, s.IsRevoked(token))
}

func TestUpdateProfile(t *testing.T) {
	s := NewAuthService(zap.NewNop())

	dob := "1990-06-15"
	contact := "+1555000666"
	u, err := s.UpdateProfile("user-1", ProfileUpdate{
		DateOfBirth:      &dob,
		EmergencyContact: &contact,
	})
	require.NoError(t, err)
	assert.Equal(t, dob, u.DateOfBirth)
	assert.Equal(t, contact, u.EmergencyContact)
	assert.Equal(t, "John Doe", u.Name, "untouched fields are preserved")

	_, err = s.UpdateProfile("user-missing", ProfileUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
