package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookease/models"
)

// fixedNow pins the ledger clock so notice periods are exact.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

func newTestLedger() *Ledger {
	l := NewLedger(nil, zap.NewNop())
	l.now = func() time.Time { return fixedNow }
	return l
}

// seedBooking appends a paid course booking starting the given duration
// after the pinned clock.
func seedBooking(l *Ledger, id string, startsIn time.Duration) *models.Booking {
	start := fixedNow.Add(startsIn)
	b := &models.Booking{
		ID:            id,
		ServiceID:     "course-yoga-basics",
		Service:       models.ServiceSnapshot{ID: "course-yoga-basics", Name: "Yoga Basics", Duration: 60, Price: 20},
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1555000111",
		Date:          start.Format("2006-01-02"),
		TimeSlot: models.TimeSlot{
			ID:        start.Format("2006-01-02") + "-" + start.Format("15:04"),
			StartTime: start.Format("15:04"),
			EndTime:   start.Add(time.Hour).Format("15:04"),
			Available: true,
		},
		Status:        models.StatusConfirmed,
		PaymentStatus: models.PaymentPaid,
		TotalPrice:    20,
		Mode:          models.ModeCourse,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
	l.append(b)
	return b
}

func TestCancelWithRefundPolicy(t *testing.T) {
	t.Run("full refund with 48h notice", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 72*time.Hour)

		b, err := l.CancelWithRefund(context.Background(), "booking-a", "sick", RefundTypeRefund)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, b.Status)
		assert.Equal(t, models.PaymentRefunded, b.PaymentStatus)
		assert.Equal(t, 20.0, b.RefundAmount)
		assert.Equal(t, "sick", b.CancellationReason)
	})

	t.Run("80 percent between 24h and 48h", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-b", 30*time.Hour)

		b, err := l.CancelWithRefund(context.Background(), "booking-b", "", RefundTypeRefund)
		require.NoError(t, err)
		assert.InDelta(t, 16.0, b.RefundAmount, 0.001)
	})

	t.Run("nothing under 24h", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-c", 2*time.Hour)

		b, err := l.CancelWithRefund(context.Background(), "booking-c", "", RefundTypeRefund)
		require.NoError(t, err)
		assert.Equal(t, 0.0, b.RefundAmount)
		assert.Equal(t, models.PaymentRefunded, b.PaymentStatus)
	})

	t.Run("store credit is always full price", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-d", 2*time.Hour)

		b, err := l.CancelWithRefund(context.Background(), "booking-d", "", RefundTypeStoreCredit)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStoreCredit, b.PaymentStatus)
		assert.Equal(t, 20.0, b.StoreCreditAmount)
		assert.Equal(t, 0.0, b.RefundAmount)
	})

	t.Run("unparseable schedule forfeits the refund", func(t *testing.T) {
		l := newTestLedger()
		b := seedBooking(l, "booking-e", 72*time.Hour)
		b.Date = "someday"

		got, err := l.CancelWithRefund(context.Background(), "booking-e", "", RefundTypeRefund)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.RefundAmount)
	})

	t.Run("invalid refund type", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-f", 72*time.Hour)

		_, err := l.CancelWithRefund(context.Background(), "booking-f", "", "cash")
		var guard *GuardError
		require.ErrorAs(t, err, &guard)
		assert.Equal(t, "invalidRefundType", guard.Code)
	})

	t.Run("unknown booking", func(t *testing.T) {
		l := newTestLedger()
		_, err := l.CancelWithRefund(context.Background(), "booking-x", "", RefundTypeRefund)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancelWithoutRefund(t *testing.T) {
	l := newTestLedger()
	seedBooking(l, "booking-a", 72*time.Hour)

	b, err := l.Cancel("booking-a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, 0.0, b.RefundAmount)

	_, err = l.Cancel("booking-x")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestReschedule(t *testing.T) {
	l := newTestLedger()
	original := seedBooking(l, "booking-a", 72*time.Hour)
	origDate := original.Date
	origSlot := original.TimeSlot

	newSlot := models.TimeSlot{ID: "2026-09-10-14:00", StartTime: "14:00", EndTime: "15:00", Available: true}
	b, err := l.Reschedule("booking-a", "2026-09-10", newSlot, "conflict")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-10", b.Date)
	assert.Equal(t, newSlot, b.TimeSlot)
	require.Len(t, b.RescheduleHistory, 1)
	record := b.RescheduleHistory[0]
	assert.Equal(t, origDate, record.OriginalDate)
	assert.Equal(t, origSlot, record.OriginalTimeSlot)
	assert.Equal(t, "2026-09-10", record.NewDate)
	assert.Equal(t, "conflict", record.Reason)
	assert.NotEmpty(t, record.ID)

	// A second reschedule appends, never rewrites.
	later := models.TimeSlot{ID: "2026-09-12-09:00", StartTime: "09:00", EndTime: "10:00", Available: true}
	b, err = l.Reschedule("booking-a", "2026-09-12", later, "")
	require.NoError(t, err)
	require.Len(t, b.RescheduleHistory, 2)
	assert.Equal(t, "2026-09-10", b.RescheduleHistory[1].OriginalDate)
}

func TestTransfer(t *testing.T) {
	l := newTestLedger()
	seedBooking(l, "booking-a", 72*time.Hour)

	b, err := l.Transfer("booking-a", models.Customer{
		Name:  "Mark Lee",
		Email: "mark@example.com",
		Phone: "+1555000222",
	}, "gift")
	require.NoError(t, err)

	assert.Equal(t, "Mark Lee", b.CustomerName)
	assert.Equal(t, "mark@example.com", b.CustomerEmail)
	require.Len(t, b.TransferHistory, 1)
	record := b.TransferHistory[0]
	assert.Equal(t, "Jane Smith", record.OriginalCustomerName)
	assert.Equal(t, "jane@example.com", record.OriginalCustomerEmail)
	assert.Equal(t, "Mark Lee", record.NewCustomerName)
	assert.Equal(t, "gift", record.Reason)
}

func TestOwnedChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can cancel with enough notice", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 72*time.Hour)

		b, err := l.CancelOwnedWithRefund(ctx, "booking-a", "JANE@example.com", "sick", RefundTypeRefund)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, b.Status)
		assert.Equal(t, 20.0, b.RefundAmount)
	})

	t.Run("foreign caller only sees not-found", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 72*time.Hour)

		_, err := l.CancelOwnedWithRefund(ctx, "booking-a", "mallory@example.com", "", RefundTypeRefund)
		assert.ErrorIs(t, err, ErrBookingNotFound)

		_, err = l.RescheduleOwned("booking-a", "mallory@example.com", "2026-09-10", models.TimeSlot{ID: "2026-09-10-14:00"}, "")
		assert.ErrorIs(t, err, ErrBookingNotFound)

		_, err = l.TransferOwned("booking-a", "mallory@example.com", models.Customer{Name: "M", Email: "m@example.com", Phone: "1"}, "")
		assert.ErrorIs(t, err, ErrBookingNotFound)

		b, err := l.Get("booking-a")
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, b.Status)
		assert.Equal(t, "jane@example.com", b.CustomerEmail)
	})

	t.Run("changes inside the notice window are refused", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 6*time.Hour)

		var guard *GuardError
		_, err := l.CancelOwnedWithRefund(ctx, "booking-a", "jane@example.com", "", RefundTypeRefund)
		require.ErrorAs(t, err, &guard)
		assert.Equal(t, "noticeTooShort", guard.Code)

		_, err = l.RescheduleOwned("booking-a", "jane@example.com", "2026-09-10", models.TimeSlot{ID: "2026-09-10-14:00"}, "")
		require.ErrorAs(t, err, &guard)
		assert.Equal(t, "noticeTooShort", guard.Code)
	})

	t.Run("cancelled bookings cannot be changed again", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 72*time.Hour)
		_, err := l.Cancel("booking-a")
		require.NoError(t, err)

		var guard *GuardError
		_, err = l.TransferOwned("booking-a", "jane@example.com", models.Customer{Name: "M", Email: "m@example.com", Phone: "1"}, "")
		require.ErrorAs(t, err, &guard)
		assert.Equal(t, "alreadyCancelled", guard.Code)
	})

	t.Run("owner can reschedule and transfer with notice", func(t *testing.T) {
		l := newTestLedger()
		seedBooking(l, "booking-a", 72*time.Hour)

		newSlot := models.TimeSlot{ID: "2026-09-10-14:00", StartTime: "14:00", EndTime: "15:00", Available: true}
		b, err := l.RescheduleOwned("booking-a", "jane@example.com", "2026-09-10", newSlot, "conflict")
		require.NoError(t, err)
		require.Len(t, b.RescheduleHistory, 1)

		b, err = l.TransferOwned("booking-a", "jane@example.com", models.Customer{
			Name:  "Mark Lee",
			Email: "mark@example.com",
			Phone: "+1555000222",
		}, "gift")
		require.NoError(t, err)
		assert.Equal(t, "mark@example.com", b.CustomerEmail)

		// Ownership follows the transfer: the previous customer is now a
		// stranger to the booking.
		_, err = l.TransferOwned("booking-a", "jane@example.com", models.Customer{Name: "J", Email: "j@example.com", Phone: "1"}, "")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestListByEmail(t *testing.T) {
	l := newTestLedger()
	seedBooking(l, "booking-a", 24*time.Hour)
	seedBooking(l, "booking-b", 48*time.Hour)
	other := seedBooking(l, "booking-c", 72*time.Hour)
	other.CustomerEmail = "mark@example.com"

	mine := l.ListByEmail("JANE@example.com")
	require.Len(t, mine, 2)
	assert.Equal(t, "booking-a", mine[0].ID)
	assert.Equal(t, "booking-b", mine[1].ID)

	assert.Empty(t, l.ListByEmail("nobody@example.com"))
}

func TestGet(t *testing.T) {
	l := newTestLedger()
	seedBooking(l, "booking-a", 24*time.Hour)

	b, err := l.Get("booking-a")
	require.NoError(t, err)
	assert.Equal(t, "booking-a", b.ID)

	_, err = l.Get("booking-x")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
