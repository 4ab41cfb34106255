package booking

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookease/models"
)

// StartSession creates a fresh wizard, optionally seeded with the
// signed-in user and an entry-point mode.
func (s *DefaultSessionService) StartSession(user *models.User, mode models.BookingMode) (string, models.BookingState, error) {
	w := NewWorkflow(s.Ledger, s.Bus, s.Logger)
	if mode != "" {
		if err := w.SetMode(mode); err != nil {
			return "", models.BookingState{}, err
		}
	}
	w.SetBookingUser(user)

	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = w
	s.mu.Unlock()

	s.Logger.Info("booking session started",
		zap.String("sessionId", sessionID),
		zap.String("mode", string(w.State().Mode)),
	)
	return sessionID, w.State(), nil
}

// Workflow returns the wizard owned by the given session.
func (s *DefaultSessionService) Workflow(sessionID string) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// EndSession discards a wizard. Idempotent: ending an unknown session is
// a no-op.
func (s *DefaultSessionService) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
