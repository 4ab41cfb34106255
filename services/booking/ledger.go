package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookease/models"
)

// Refund choices for CancelWithRefund.
const (
	RefundTypeRefund      = "refund"
	RefundTypeStoreCredit = "store_credit"
)

// Refund policy: full refund with 48h+ notice, 80% between 24h and 48h,
// nothing under 24h. Store credit is always the full price.
const (
	fullRefundNoticeHours    = 48
	partialRefundNoticeHours = 24
	partialRefundRate        = 0.8
)

// Customers may change their own bookings only up to this close to the
// scheduled start. Back-office operations are not bound by it.
const changeNoticeHours = 24

// Ledger is the collection of finalized bookings. Entries are appended by
// workflow confirmation and only ever status-transitioned afterwards,
// never deleted.
type Ledger struct {
	mu       sync.Mutex
	bookings []*models.Booking

	bus    *cqrs.EventBus
	logger *zap.Logger
	now    func() time.Time
}

func NewLedger(bus *cqrs.EventBus, logger *zap.Logger) *Ledger {
	return &Ledger{
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// append stores a new entry. Only the workflow's confirmation path calls it.
func (l *Ledger) append(b *models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = append(l.bookings, b)
}

// List returns a copy of every booking, in creation order.
func (l *Ledger) List() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, *b)
	}
	return out
}

// Get returns the booking with the given ID.
func (l *Ledger) Get(id string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.find(id)
	if b == nil {
		return models.Booking{}, ErrBookingNotFound
	}
	return *b, nil
}

// ListByEmail returns the bookings whose customer email matches,
// case-insensitively. Used by the account-management surface.
func (l *Ledger) ListByEmail(email string) []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.Booking
	for _, b := range l.bookings {
		if strings.EqualFold(b.CustomerEmail, email) {
			out = append(out, *b)
		}
	}
	return out
}

// Cancel sets the booking's status to cancelled without computing any
// refund. The refund-aware path is CancelWithRefund.
func (l *Ledger) Cancel(id string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.find(id)
	if b == nil {
		return models.Booking{}, ErrBookingNotFound
	}
	b.Status = models.StatusCancelled
	b.UpdatedAt = l.now()
	return *b, nil
}

// CancelWithRefund cancels a booking and settles the refund according to
// the notice-period policy. The amounts are re-derived here from the
// booking's scheduled time; a pre-computed value from the caller is never
// trusted.
func (l *Ledger) CancelWithRefund(ctx context.Context, id, reason, refundType string) (models.Booking, error) {
	if refundType != RefundTypeRefund && refundType != RefundTypeStoreCredit {
		return models.Booking{}, NewGuardError("invalidRefundType", "refund type must be 'refund' or 'store_credit'")
	}

	l.mu.Lock()
	b := l.find(id)
	if b == nil {
		l.mu.Unlock()
		return models.Booking{}, ErrBookingNotFound
	}

	hoursUntil := l.hoursUntil(b)

	b.Status = models.StatusCancelled
	b.CancellationReason = reason
	b.UpdatedAt = l.now()

	if refundType == RefundTypeRefund {
		b.PaymentStatus = models.PaymentRefunded
		switch {
		case hoursUntil >= fullRefundNoticeHours:
			b.RefundAmount = b.TotalPrice
		case hoursUntil >= partialRefundNoticeHours:
			b.RefundAmount = b.TotalPrice * partialRefundRate
		default:
			b.RefundAmount = 0
		}
	} else {
		b.PaymentStatus = models.PaymentStoreCredit
		b.StoreCreditAmount = b.TotalPrice
	}

	out := *b
	l.mu.Unlock()

	l.publishCancelled(ctx, out)
	return out, nil
}

// Reschedule overwrites the booking's date and slot and appends an
// immutable audit record with the prior values. History is append-only.
func (l *Ledger) Reschedule(id, newDate string, newSlot models.TimeSlot, reason string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.find(id)
	if b == nil {
		return models.Booking{}, ErrBookingNotFound
	}

	record := models.RescheduleRecord{
		ID:               uuid.NewString(),
		OriginalDate:     b.Date,
		OriginalTimeSlot: b.TimeSlot,
		NewDate:          newDate,
		NewTimeSlot:      newSlot,
		Reason:           reason,
		CreatedAt:        l.now(),
	}

	b.Date = newDate
	b.TimeSlot = newSlot
	b.RescheduleHistory = append(b.RescheduleHistory, record)
	b.UpdatedAt = l.now()
	return *b, nil
}

// Transfer overwrites the customer identity fields and appends an
// immutable audit record capturing the before/after identity.
func (l *Ledger) Transfer(id string, newCustomer models.Customer, reason string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.find(id)
	if b == nil {
		return models.Booking{}, ErrBookingNotFound
	}

	record := models.TransferRecord{
		ID:                    uuid.NewString(),
		OriginalCustomerName:  b.CustomerName,
		OriginalCustomerEmail: b.CustomerEmail,
		NewCustomerName:       newCustomer.Name,
		NewCustomerEmail:      newCustomer.Email,
		Reason:                reason,
		CreatedAt:             l.now(),
	}

	b.CustomerName = newCustomer.Name
	b.CustomerEmail = newCustomer.Email
	b.CustomerPhone = newCustomer.Phone
	b.CustomerEmergencyContact = newCustomer.EmergencyContact
	b.TransferHistory = append(b.TransferHistory, record)
	b.UpdatedAt = l.now()
	return *b, nil
}

// authorizeOwnedChange gates the customer-facing mutations: the caller
// must be the booking's customer, the booking must still be live, and the
// scheduled start must be at least the notice period away. A foreign
// caller learns nothing beyond not-found.
func (l *Ledger) authorizeOwnedChange(id, customerEmail string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.find(id)
	if b == nil || !strings.EqualFold(b.CustomerEmail, customerEmail) {
		return ErrBookingNotFound
	}
	if b.Status == models.StatusCancelled {
		return NewGuardError("alreadyCancelled", "the booking is already cancelled")
	}
	if l.hoursUntil(b) < changeNoticeHours {
		return NewGuardError("noticeTooShort", "changes require at least 24 hours before the scheduled start")
	}
	return nil
}

// CancelOwnedWithRefund is the customer-facing cancellation: ownership
// and the notice window are checked before the refund policy settles.
func (l *Ledger) CancelOwnedWithRefund(ctx context.Context, id, customerEmail, reason, refundType string) (models.Booking, error) {
	if err := l.authorizeOwnedChange(id, customerEmail); err != nil {
		return models.Booking{}, err
	}
	return l.CancelWithRefund(ctx, id, reason, refundType)
}

// RescheduleOwned is the customer-facing reschedule, bound by ownership
// and the notice window.
func (l *Ledger) RescheduleOwned(id, customerEmail, newDate string, newSlot models.TimeSlot, reason string) (models.Booking, error) {
	if err := l.authorizeOwnedChange(id, customerEmail); err != nil {
		return models.Booking{}, err
	}
	return l.Reschedule(id, newDate, newSlot, reason)
}

// TransferOwned is the customer-facing transfer, bound by ownership and
// the notice window. After it succeeds the new customer owns the booking.
func (l *Ledger) TransferOwned(id, customerEmail string, newCustomer models.Customer, reason string) (models.Booking, error) {
	if err := l.authorizeOwnedChange(id, customerEmail); err != nil {
		return models.Booking{}, err
	}
	return l.Transfer(id, newCustomer, reason)
}

func (l *Ledger) find(id string) *models.Booking {
	for _, b := range l.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// hoursUntil derives the notice period from the booking's date plus its
// slot start time. A booking without a parseable schedule counts as
// already due, which forfeits any timed refund.
func (l *Ledger) hoursUntil(b *models.Booking) float64 {
	start := b.Date
	if b.TimeSlot.StartTime != "" {
		start += " " + b.TimeSlot.StartTime
	} else {
		start += " 00:00"
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", start, time.Local)
	if err != nil {
		l.logger.Warn("unparseable booking schedule", zap.String("bookingId", b.ID), zap.Error(err))
		return 0
	}
	return at.Sub(l.now()).Hours()
}

func (l *Ledger) publishCancelled(ctx context.Context, b models.Booking) {
	if l.bus == nil {
		return
	}
	event := models.BookingCancelled{
		Header:       models.NewEventHeader(),
		BookingID:    b.ID,
		Reason:       b.CancellationReason,
		RefundAmount: b.RefundAmount,
		StoreCredit:  b.StoreCreditAmount,
	}
	if err := l.bus.Publish(ctx, event); err != nil {
		l.logger.Error("failed to publish BookingCancelled", zap.String("bookingId", b.ID), zap.Error(err))
	}
}
