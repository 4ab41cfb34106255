package models

import "time"

// BookingMode selects between the full course flow and the abbreviated,
// free-of-charge consultation flow.
type BookingMode string

const (
	ModeCourse       BookingMode = "course"
	ModeConsultation BookingMode = "consultation"
)

// Booking lifecycle status. Bookings are never deleted, only transitioned.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentPaid        = "paid"
	PaymentPending     = "pending"
	PaymentRefunded    = "refunded"
	PaymentStoreCredit = "store_credit"
)

// Booking is a finalized ledger entry. Created only by workflow
// confirmation; mutated only through the ledger operations.
type Booking struct {
	ID                       string             `json:"id"`
	ServiceID                string             `json:"serviceId"`
	Service                  ServiceSnapshot    `json:"service"`
	CustomerName             string             `json:"customerName"`
	CustomerEmail            string             `json:"customerEmail"`
	CustomerPhone            string             `json:"customerPhone"`
	CustomerEmergencyContact string             `json:"customerEmergencyContact,omitempty"`
	BookedBy                 string             `json:"bookedBy,omitempty"` // user ID, set when booking for someone else
	BookedByName             string             `json:"bookedByName,omitempty"`
	Date                     string             `json:"date"` // "YYYY-MM-DD"
	TimeSlot                 TimeSlot           `json:"timeSlot"`
	Status                   string             `json:"status"`
	PaymentStatus            string             `json:"paymentStatus"`
	RefundAmount             float64            `json:"refundAmount,omitempty"`
	StoreCreditAmount        float64            `json:"storeCreditAmount,omitempty"`
	TotalPrice               float64            `json:"totalPrice"`
	Mode                     BookingMode        `json:"mode"`
	Notes                    string             `json:"notes,omitempty"`
	CancellationReason       string             `json:"cancellationReason,omitempty"`
	RescheduleHistory        []RescheduleRecord `json:"rescheduleHistory,omitempty"`
	TransferHistory          []TransferRecord   `json:"transferHistory,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt"`
}

// RescheduleRecord is an immutable audit entry appended on every reschedule.
type RescheduleRecord struct {
	ID               string    `json:"id"`
	OriginalDate     string    `json:"originalDate"`
	OriginalTimeSlot TimeSlot  `json:"originalTimeSlot"`
	NewDate          string    `json:"newDate"`
	NewTimeSlot      TimeSlot  `json:"newTimeSlot"`
	Reason           string    `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TransferRecord is an immutable audit entry appended on every transfer.
type TransferRecord struct {
	ID                    string    `json:"id"`
	OriginalCustomerName  string    `json:"originalCustomerName"`
	OriginalCustomerEmail string    `json:"originalCustomerEmail"`
	NewCustomerName       string    `json:"newCustomerName"`
	NewCustomerEmail      string    `json:"newCustomerEmail"`
	Reason                string    `json:"reason,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}
