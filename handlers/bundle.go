package handlers

import (
	"bookease/services/attendee"
	"bookease/services/booking"
	"bookease/services/catalog"
	"bookease/services/user"
)

// HandlerBundle groups all endpoint handlers around their injected
// service collaborators.
type HandlerBundle struct {
	Sessions  booking.SessionService
	Ledger    *booking.Ledger
	Catalog   catalog.Service
	Attendees attendee.Registry
	Auth      user.AuthService
}

func NewHandlerBundle(
	sessions booking.SessionService,
	ledger *booking.Ledger,
	cat catalog.Service,
	attendees attendee.Registry,
	auth user.AuthService,
) *HandlerBundle {
	return &HandlerBundle{
		Sessions:  sessions,
		Ledger:    ledger,
		Catalog:   cat,
		Attendees: attendees,
		Auth:      auth,
	}
}
