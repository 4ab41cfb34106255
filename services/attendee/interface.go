package attendee

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"bookease/models"
)

// ErrAttendeeNotFound is returned by lookups for unknown attendee IDs.
// Update and Delete are deliberately forgiving and do not return it.
var ErrAttendeeNotFound = errors.New("attendee not found")

// Update carries partial attendee edits. Nil fields are left untouched.
type Update struct {
	Name             *string
	Email            *string
	Phone            *string
	DateOfBirth      *string
	EmergencyContact *string
	MedicalInfo      *string
	Allergies        *string
	Notes            *string
}

// Registry manages the dependent/proxy profiles a user can book for.
// Its backing store is the only durable state in the system.
type Registry interface {
	Add(ctx context.Context, data models.Attendee) (string, error)
	AddFromBooking(ctx context.Context, customer models.Customer, parentUserID string) (string, error)
	UpdateAttendee(ctx context.Context, id string, updates Update) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Attendee, error)
	ListByParent(ctx context.Context, parentUserID string) ([]models.Attendee, error)
}

// DefaultRegistry implements Registry over a Store, holding the attendee
// list in memory and writing the whole list through on every mutation.
type DefaultRegistry struct {
	mu        sync.Mutex
	attendees []models.Attendee
	loaded    bool

	Store  Store
	Logger *zap.Logger
	Now    func() time.Time
}

func NewRegistry(store Store, logger *zap.Logger) *DefaultRegistry {
	return &DefaultRegistry{
		Store:  store,
		Logger: logger,
		Now:    time.Now,
	}
}
