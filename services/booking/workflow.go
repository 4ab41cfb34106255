package booking

import (
	"context"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookease/models"
	"bookease/services/schedule"
)

// Workflow is the multi-step reservation wizard: one instance per active
// session. All mutations go through its methods; the presentation layer
// only ever sees State() snapshots.
type Workflow struct {
	mu    sync.Mutex
	state models.BookingState

	ledger   *Ledger
	bus      *cqrs.EventBus
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewWorkflow(ledger *Ledger, bus *cqrs.EventBus, logger *zap.Logger) *Workflow {
	return &Workflow{
		state:    models.DefaultBookingState(),
		ledger:   ledger,
		bus:      bus,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// State returns a snapshot of the wizard for rendering.
func (w *Workflow) State() models.BookingState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// SetMode switches between the course and consultation flows. Selections
// already made are kept: mode only changes which forward transition
// applies at step 2 and which confirmation variant renders.
func (w *Workflow) SetMode(mode models.BookingMode) error {
	if mode != models.ModeCourse && mode != models.ModeConsultation {
		return NewGuardError("invalidMode", "mode must be 'course' or 'consultation'")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Mode = mode
	return nil
}

// SelectService picks the course being booked and invalidates any
// previously chosen date and slot.
func (w *Workflow) SelectService(course models.Course) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := course
	w.state.SelectedService = &c
	w.state.SelectedDate = ""
	w.state.SelectedTimeSlot = nil
}

// SelectDate picks the booking date and invalidates the chosen slot.
// Unavailable dates (past, Sunday) are refused.
func (w *Workflow) SelectDate(date time.Time) error {
	if !schedule.IsDateAvailable(date, w.now()) {
		return NewGuardError("dateUnavailable", "date is in the past or falls on a closed day")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.SelectedDate = date.Format("2006-01-02")
	w.state.SelectedTimeSlot = nil
	return nil
}

// SelectTimeSlot picks a generated slot for the selected date.
func (w *Workflow) SelectTimeSlot(slot models.TimeSlot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.SelectedDate == "" {
		return NewGuardError("dateRequired", "select a date before choosing a time slot")
	}
	if !slot.Available {
		return NewGuardError("slotUnavailable", "the chosen time slot is not available")
	}
	s := slot
	w.state.SelectedTimeSlot = &s
	return nil
}

// SetCustomer stores the validated customer snapshot collected at step 3.
func (w *Workflow) SetCustomer(customer models.Customer) error {
	if err := w.validate.Struct(customer); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	c := customer
	w.state.Customer = &c
	return nil
}

// SetBookingUser records the authenticated user driving the wizard,
// possibly booking on behalf of someone else.
func (w *Workflow) SetBookingUser(user *models.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if user == nil {
		w.state.BookingUser = nil
		return
	}
	u := *user
	w.state.BookingUser = &u
}

// Advance moves the wizard forward one step, enforcing the guards for the
// current step. The step 4 -> 5 transition goes through Confirm instead.
func (w *Workflow) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state.CurrentStep {
	case models.StepService:
		if w.state.SelectedService == nil {
			return NewGuardError("serviceRequired", "select a course before continuing")
		}
		w.state.CurrentStep = models.StepDateTime
		return nil

	case models.StepDateTime:
		if w.state.SelectedDate == "" || w.state.SelectedTimeSlot == nil {
			return NewGuardError("dateTimeRequired", "select a date and time slot before continuing")
		}
		if w.state.Mode == models.ModeConsultation {
			// The branch point: consultation skips the customer form, so a
			// customer snapshot must exist here or be synthesized from the
			// signed-in user.
			if err := w.ensureCustomer(); err != nil {
				return err
			}
			w.state.CurrentStep = models.StepConfirm
			return nil
		}
		w.state.CurrentStep = models.StepCustomer
		return nil

	case models.StepCustomer:
		if w.state.Customer == nil {
			return NewGuardError("customerRequired", "complete the customer form before continuing")
		}
		w.state.CurrentStep = models.StepConfirm
		return nil

	case models.StepConfirm:
		return NewGuardError("confirmRequired", "confirm the booking to complete it")

	default:
		return NewGuardError("flowComplete", "the booking flow has finished; reset to start over")
	}
}

// Back moves to the preceding applicable step, preserving everything
// already entered.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state.CurrentStep {
	case models.StepDateTime:
		w.state.CurrentStep = models.StepService
	case models.StepCustomer:
		w.state.CurrentStep = models.StepDateTime
	case models.StepConfirm:
		if w.state.Mode == models.ModeConsultation {
			w.state.CurrentStep = models.StepDateTime
		} else {
			w.state.CurrentStep = models.StepCustomer
		}
	default:
		return NewGuardError("atBoundary", "cannot go back from the current step")
	}
	return nil
}

// Reset returns the wizard to its initial defaults. Used after a
// successful booking or an explicit abandonment.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = models.DefaultBookingState()
}

// Confirm is the sole production point for ledger entries. It requires
// service, date, slot, and customer all present; anything missing is an
// invariant violation (the guards should have blocked it), reported
// loudly and leaving the ledger untouched.
func (w *Workflow) Confirm(ctx context.Context) (models.Booking, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var missing []string
	if w.state.SelectedService == nil {
		missing = append(missing, "service")
	}
	if w.state.SelectedDate == "" {
		missing = append(missing, "date")
	}
	if w.state.SelectedTimeSlot == nil {
		missing = append(missing, "timeSlot")
	}
	if w.state.Customer == nil {
		missing = append(missing, "customer")
	}
	if len(missing) > 0 {
		err := &InvariantError{Missing: missing}
		w.logger.Error("confirmBooking called with incomplete state", zap.Strings("missing", missing))
		return models.Booking{}, err
	}

	service := *w.state.SelectedService
	customer := *w.state.Customer
	isConsult := w.state.Mode == models.ModeConsultation

	totalPrice := service.Price
	if isConsult {
		// Consultations are free regardless of the service's list price.
		totalPrice = 0
	}

	now := w.now()
	b := &models.Booking{
		ID:                       "booking-" + uuid.NewString(),
		ServiceID:                service.ID,
		Service:                  service.Snapshot(),
		CustomerName:             customer.Name,
		CustomerEmail:            customer.Email,
		CustomerPhone:            customer.Phone,
		CustomerEmergencyContact: customer.EmergencyContact,
		Date:                     w.state.SelectedDate,
		TimeSlot:                 *w.state.SelectedTimeSlot,
		Status:                   models.StatusConfirmed,
		PaymentStatus:            models.PaymentPending,
		TotalPrice:               totalPrice,
		Mode:                     w.state.Mode,
		Notes:                    customer.Notes,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if u := w.state.BookingUser; u != nil && u.Email != customer.Email {
		b.BookedBy = u.ID
		b.BookedByName = u.Name
	}

	w.ledger.append(b)
	w.publishConfirmed(ctx, *b)
	w.state.CurrentStep = models.StepSuccess

	w.logger.Info("booking confirmed",
		zap.String("bookingId", b.ID),
		zap.String("mode", string(b.Mode)),
		zap.Float64("totalPrice", b.TotalPrice),
	)
	return *b, nil
}

// ensureCustomer synthesizes the consultation customer snapshot from the
// signed-in user's profile. Caller holds the lock.
func (w *Workflow) ensureCustomer() error {
	if w.state.Customer != nil {
		return nil
	}
	u := w.state.BookingUser
	if u == nil {
		return AuthRequiredError{}
	}
	w.state.Customer = &models.Customer{
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		EmergencyContact: u.EmergencyContact,
		DateOfBirth:      u.DateOfBirth,
		Address:          u.Address,
		MedicalInfo:      u.MedicalInfo,
	}
	return nil
}

func (w *Workflow) publishConfirmed(ctx context.Context, b models.Booking) {
	if w.bus == nil {
		return
	}
	event := models.BookingConfirmed{
		Header:          models.NewEventHeader(),
		BookingID:       b.ID,
		Customer:        *w.state.Customer,
		Mode:            b.Mode,
		TotalPrice:      b.TotalPrice,
		Date:            b.Date,
		ServiceSnapshot: b.Service,
	}
	if u := w.state.BookingUser; u != nil {
		event.BookedByUserID = u.ID
		event.BookedByEmail = u.Email
	}
	if err := w.bus.Publish(ctx, event); err != nil {
		w.logger.Error("failed to publish BookingConfirmed", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

// snapshot deep-copies the state so callers cannot mutate wizard
// internals. Caller holds the lock.
func (w *Workflow) snapshot() models.BookingState {
	s := w.state
	if s.SelectedService != nil {
		c := *s.SelectedService
		s.SelectedService = &c
	}
	if s.SelectedTimeSlot != nil {
		t := *s.SelectedTimeSlot
		s.SelectedTimeSlot = &t
	}
	if s.Customer != nil {
		c := *s.Customer
		s.Customer = &c
	}
	if s.BookingUser != nil {
		u := *s.BookingUser
		s.BookingUser = &u
	}
	return s
}
