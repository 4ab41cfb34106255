package models

import (
	"time"

	"github.com/google/uuid"
)

// EventHeader carries the envelope fields every domain event shares.
type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"publishedAt"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

// BookingConfirmed is published by the workflow after a booking is
// appended to the ledger. The attendee registry subscribes to it to
// auto-register dependents booked by a signed-in user.
type BookingConfirmed struct {
	Header          EventHeader     `json:"header"`
	BookingID       string          `json:"bookingId"`
	Customer        Customer        `json:"customer"`
	BookedByUserID  string          `json:"bookedByUserId,omitempty"`
	BookedByEmail   string          `json:"bookedByEmail,omitempty"`
	Mode            BookingMode     `json:"mode"`
	TotalPrice      float64         `json:"totalPrice"`
	Date            string          `json:"date"`
	ServiceSnapshot ServiceSnapshot `json:"service"`
}

// BookingCancelled is published when a ledger entry is cancelled, with or
// without a refund.
type BookingCancelled struct {
	Header       EventHeader `json:"header"`
	BookingID    string      `json:"bookingId"`
	Reason       string      `json:"reason,omitempty"`
	RefundAmount float64     `json:"refundAmount"`
	StoreCredit  float64     `json:"storeCredit"`
}
