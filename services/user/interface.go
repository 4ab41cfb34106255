package user

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"bookease/models"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ProfileUpdate carries partial profile edits. Nil fields are untouched.
type ProfileUpdate struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	EmergencyContact *string `json:"emergencyContact"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	MedicalInfo      *string `json:"medicalInfo"`
}

// AuthService is the simulated authentication collaborator: an in-memory
// account store with real password hashing and token issuance, but no
// hardening beyond that.
type AuthService interface {
	Register(input RegisterInput) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	LoginAdmin(email, password string) (*models.Admin, string, error)
	Logout(token string)
	IsRevoked(token string) bool
	GetUser(id string) (*models.User, error)
	GetAdmin(id string) (*models.Admin, error)
	UpdateProfile(userID string, updates ProfileUpdate) (*models.User, error)
}

// DefaultAuthService implements AuthService over in-memory user and
// admin stores seeded with demo accounts.
type DefaultAuthService struct {
	mu      sync.Mutex
	users   []models.User
	admins  []models.Admin
	revoked map[string]struct{}

	Logger *zap.Logger
	Now    func() time.Time
}

func NewAuthService(logger *zap.Logger) *DefaultAuthService {
	s := &DefaultAuthService{
		revoked: make(map[string]struct{}),
		Logger:  logger,
		Now:     time.Now,
	}
	s.seed()
	return s
}
