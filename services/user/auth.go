package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookease/models"
	"bookease/utils"
)

const tokenTTL = 24 * time.Hour

// seed loads the demo accounts: one user and one admin.
func (s *DefaultAuthService) seed() {
	now := s.Now()

	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	s.users = []models.User{{
		ID:           "user-1",
		Email:        "john@example.com",
		Name:         "John Doe",
		Phone:        "+1234567890",
		PasswordHash: string(userHash),
		CreatedAt:    now,
		IsActive:     true,
	}}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	s.admins = []models.Admin{{
		ID:           "admin-1",
		Email:        "admin@bookease.com",
		Name:         "Admin User",
		Role:         "admin",
		PasswordHash: string(adminHash),
		CreatedAt:    now,
		IsActive:     true,
	}}
}

// Register creates an account and signs it in, returning the new user and
// a session token. Duplicate emails are refused.
func (s *DefaultAuthService) Register(input RegisterInput) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, input.Email) {
			return nil, "", ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	newUser := models.User{
		ID:           "user-" + uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		CreatedAt:    s.Now(),
		IsActive:     true,
	}
	s.users = append(s.users, newUser)

	token, err := utils.GenerateToken(newUser.ID, newUser.Email, "user", tokenTTL)
	if err != nil {
		return nil, "", err
	}

	s.Logger.Info("user registered", zap.String("userId", newUser.ID))
	out := newUser
	return &out, token, nil
}

// Login verifies credentials against the stored hash and issues a token.
func (s *DefaultAuthService) Login(email, password string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if !strings.EqualFold(u.Email, email) || !u.IsActive {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return nil, "", ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(u.ID, u.Email, "user", tokenTTL)
		if err != nil {
			return nil, "", err
		}
		out := u
		return &out, token, nil
	}
	return nil, "", ErrInvalidCredentials
}

// LoginAdmin verifies back-office credentials and issues an admin token.
func (s *DefaultAuthService) LoginAdmin(email, password string) (*models.Admin, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if !strings.EqualFold(a.Email, email) || !a.IsActive {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return nil, "", ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(a.ID, a.Email, "admin", tokenTTL)
		if err != nil {
			return nil, "", err
		}
		out := a
		return &out, token, nil
	}
	return nil, "", ErrInvalidCredentials
}

// Logout revokes a token. Tokens expire on their own; the revocation set
// only covers explicit sign-outs.
func (s *DefaultAuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
}

func (s *DefaultAuthService) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[token]
	return ok
}

func (s *DefaultAuthService) GetUser(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *DefaultAuthService) GetAdmin(id string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateProfile merges partial edits into the stored user record.
func (s *DefaultAuthService) UpdateProfile(userID string, updates ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}
		u := &s.users[i]
		if updates.Name != nil {
			u.Name = *updates.Name
		}
		if updates.Phone != nil {
			u.Phone = *updates.Phone
		}
		if updates.EmergencyContact != nil {
			u.EmergencyContact = *updates.EmergencyContact
		}
		if updates.DateOfBirth != nil {
			u.DateOfBirth = *updates.DateOfBirth
		}
		if updates.Address != nil {
			u.Address = *updates.Address
		}
		if updates.MedicalInfo != nil {
			u.MedicalInfo = *updates.MedicalInfo
		}
		out := *u
		return &out, nil
	}
	return nil, ErrUserNotFound
}
