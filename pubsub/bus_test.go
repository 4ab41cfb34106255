package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookease/models"
	"bookease/services/attendee"
	"bookease/services/booking"
)

// Confirming a booking for someone else, with a date of birth supplied,
// must flow through the event bus into the attendee registry.
func TestBookingConfirmedReachesAttendeeRegistry(t *testing.T) {
	wmLogger := watermill.NopLogger{}
	pubSub := NewGoChannelPubSub(wmLogger)
	t.Cleanup(func() { _ = pubSub.Close() })

	bus, err := NewEventBus(pubSub)
	require.NoError(t, err)

	registry := attendee.NewRegistry(attendee.NewMemoryStore(), zap.NewNop())
	router, err := NewRouter(pubSub, []cqrs.EventHandler{
		attendee.BookingConfirmedHandler(registry),
	}, wmLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = router.Run(ctx) }()
	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	ledger := booking.NewLedger(bus, zap.NewNop())
	w := booking.NewWorkflow(ledger, bus, zap.NewNop())
	w.SetBookingUser(&models.User{ID: "user-1", Email: "john@example.com", Name: "John Doe"})
	w.SelectService(models.Course{ID: "course-yoga-basics", Title: "Yoga Basics", Duration: 60, Price: 20, IsActive: true})

	date := time.Now().AddDate(0, 0, 7)
	if date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	require.NoError(t, w.SelectDate(date))
	require.NoError(t, w.SelectTimeSlot(models.TimeSlot{
		ID:        date.Format("2006-01-02") + "-09:00",
		StartTime: "09:00",
		EndTime:   "10:00",
		Available: true,
	}))
	require.NoError(t, w.SetCustomer(models.Customer{
		Name:        "Emma Doe",
		Email:       "emma@example.com",
		Phone:       "+1555000333",
		DateOfBirth: "2015-04-02",
	}))

	_, err = w.Confirm(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		list, err := registry.ListByParent(ctx, "user-1")
		return err == nil && len(list) == 1
	}, 5*time.Second, 20*time.Millisecond)

	list, err := registry.ListByParent(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Emma Doe", list[0].Name)
	assert.Equal(t, "2015-04-02", list[0].DateOfBirth)
}
