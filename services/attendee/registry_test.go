package attendee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookease/models"
)

func newTestRegistry() (*DefaultRegistry, *MemoryStore) {
	store := NewMemoryStore()
	return NewRegistry(store, zap.NewNop()), store
}

func TestAddCreatesAndMerges(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry()

	id, err := r.Add(ctx, models.Attendee{
		ParentUserID: "user-1",
		Name:         "Emma Doe",
		DateOfBirth:  "2015-04-02",
	})
	require.NoError(t, err)
	assert.Contains(t, id, "attendee-")

	// Same parent and same name (case-insensitive) merges instead of
	// duplicating.
	mergedID, err := r.Add(ctx, models.Attendee{
		ParentUserID: "user-1",
		Name:         "emma doe",
		Email:        "emma@example.com",
		Allergies:    "peanuts",
	})
	require.NoError(t, err)
	assert.Equal(t, id, mergedID)

	a, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "emma@example.com", a.Email)
	assert.Equal(t, "peanuts", a.Allergies)
	assert.Equal(t, "2015-04-02", a.DateOfBirth, "merge never clears earlier fields")

	list, err := r.ListByParent(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSameNameDifferentParents(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry()

	id1, err := r.Add(ctx, models.Attendee{ParentUserID: "user-1", Name: "Emma Doe"})
	require.NoError(t, err)
	id2, err := r.Add(ctx, models.Attendee{ParentUserID: "user-2", Name: "Emma Doe"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestAddFromBookingKeepsDOBEmpty(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry()

	id, err := r.AddFromBooking(ctx, models.Customer{
		Name:  "Liam Doe",
		Email: "liam@example.com",
		Phone: "+1555000333",
	}, "user-1")
	require.NoError(t, err)

	a, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", a.ParentUserID)
	assert.Empty(t, a.DateOfBirth, "date of birth is never fabricated")
}

func TestUpdateAttendee(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry()

	id, err := r.Add(ctx, models.Attendee{ParentUserID: "user-1", Name: "Emma Doe", Notes: "keep"})
	require.NoError(t, err)

	phone := "+1555000444"
	require.NoError(t, r.UpdateAttendee(ctx, id, Update{Phone: &phone}))

	a, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, phone, a.Phone)
	assert.Equal(t, "keep", a.Notes)

	// Unknown IDs are a silent no-op.
	require.NoError(t, r.UpdateAttendee(ctx, "attendee-missing", Update{Phone: &phone}))
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry()

	id, err := r.Add(ctx, models.Attendee{ParentUserID: "user-1", Name: "Emma Doe"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	assert.ErrorIs(t, err, ErrAttendeeNotFound)

	require.NoError(t, r.Delete(ctx, id))
}

func TestRegistrySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := NewRegistry(store, zap.NewNop())
	id, err := first.Add(ctx, models.Attendee{ParentUserID: "user-1", Name: "Emma Doe"})
	require.NoError(t, err)

	// A new registry over the same store sees the persisted record.
	second := NewRegistry(store, zap.NewNop())
	a, err := second.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Emma Doe", a.Name)
}

func TestOnBookingConfirmed(t *testing.T) {
	ctx := context.Background()

	newEvent := func() *models.BookingConfirmed {
		return &models.BookingConfirmed{
			Header:         models.NewEventHeader(),
			BookingID:      "booking-1",
			BookedByUserID: "user-1",
			BookedByEmail:  "john@example.com",
			Customer: models.Customer{
				Name:        "Emma Doe",
				Email:       "emma@example.com",
				Phone:       "+1555000333",
				DateOfBirth: "2015-04-02",
			},
		}
	}

	t.Run("registers the customer as an attendee", func(t *testing.T) {
		r, _ := newTestRegistry()
		require.NoError(t, r.OnBookingConfirmed(ctx, newEvent()))

		list, err := r.ListByParent(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Emma Doe", list[0].Name)
		assert.Equal(t, "2015-04-02", list[0].DateOfBirth)
	})

	t.Run("skips anonymous bookings", func(t *testing.T) {
		r, _ := newTestRegistry()
		event := newEvent()
		event.BookedByUserID = ""
		event.BookedByEmail = ""
		require.NoError(t, r.OnBookingConfirmed(ctx, event))

		list, err := r.ListByParent(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("skips self bookings", func(t *testing.T) {
		r, _ := newTestRegistry()
		event := newEvent()
		event.Customer.Email = "JOHN@example.com"
		require.NoError(t, r.OnBookingConfirmed(ctx, event))

		list, err := r.ListByParent(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("skips when no date of birth was supplied", func(t *testing.T) {
		r, _ := newTestRegistry()
		event := newEvent()
		event.Customer.DateOfBirth = ""
		require.NoError(t, r.OnBookingConfirmed(ctx, event))

		list, err := r.ListByParent(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
