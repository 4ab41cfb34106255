package booking

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"go.uber.org/zap"

	"bookease/models"
)

// SessionService manages the active booking wizards, one per session.
type SessionService interface {
	StartSession(user *models.User, mode models.BookingMode) (string, models.BookingState, error)
	Workflow(sessionID string) (*Workflow, error)
	EndSession(sessionID string)
}

// DefaultSessionService implements SessionService with an in-memory
// session map. Wizard state is deliberately not durable: a reload starts
// the flow over.
type DefaultSessionService struct {
	mu       sync.Mutex
	sessions map[string]*Workflow

	Ledger *Ledger
	Bus    *cqrs.EventBus
	Logger *zap.Logger
}

func NewSessionService(ledger *Ledger, bus *cqrs.EventBus, logger *zap.Logger) *DefaultSessionService {
	return &DefaultSessionService{
		sessions: make(map[string]*Workflow),
		Ledger:   ledger,
		Bus:      bus,
		Logger:   logger,
	}
}
