package attendee

import (
	"context"
	"strings"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"go.uber.org/zap"

	"bookease/models"
)

// OnBookingConfirmed auto-registers an attendee when a signed-in user
// completes a booking for someone else: the customer email must differ
// from the booking user's email and a date of birth must have been
// supplied. Everything else is ignored.
func (r *DefaultRegistry) OnBookingConfirmed(ctx context.Context, event *models.BookingConfirmed) error {
	if event.BookedByUserID == "" {
		return nil
	}
	if strings.EqualFold(event.Customer.Email, event.BookedByEmail) {
		return nil
	}
	if event.Customer.DateOfBirth == "" {
		return nil
	}

	id, err := r.AddFromBooking(ctx, event.Customer, event.BookedByUserID)
	if err != nil {
		return err
	}
	r.Logger.Info("attendee auto-registered from booking",
		zap.String("attendeeId", id),
		zap.String("bookingId", event.BookingID),
		zap.String("parentUserId", event.BookedByUserID),
	)
	return nil
}

// BookingConfirmedHandler adapts the registry into a watermill event
// handler for router registration.
func BookingConfirmedHandler(r *DefaultRegistry) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"attendee_registry.OnBookingConfirmed",
		r.OnBookingConfirmed,
	)
}
