package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bookease/models"
	"bookease/services/booking"
	"bookease/services/schedule"
	"bookease/utils"
)

const dateLayout = "2006-01-02"

// respondBookingError maps workflow and ledger errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var guard *booking.GuardError
	var invariant *booking.InvariantError
	var authRequired booking.AuthRequiredError
	var validation validator.ValidationErrors

	switch {
	case errors.As(err, &guard):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": guard.Message, "code": guard.Code})
	case errors.As(err, &authRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "authRequired"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer details", "details": err.Error()})
	case errors.As(err, &invariant):
		utils.JSONError(c, http.StatusInternalServerError, "booking state is incomplete", err.Error())
	case errors.Is(err, booking.ErrSessionNotFound), errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}

// optionalUser resolves the signed-in user from a bearer token, if any.
// Anonymous callers simply get nil.
func (h *HandlerBundle) optionalUser(c *gin.Context) *models.User {
	tokenString := bearerFromHeader(c)
	if tokenString == "" {
		return nil
	}
	subject, role, err := utils.ExtractClaims(tokenString)
	if err != nil || role != "user" || h.Auth.IsRevoked(tokenString) {
		return nil
	}
	u, err := h.Auth.GetUser(subject)
	if err != nil {
		return nil
	}
	return u
}

func bearerFromHeader(c *gin.Context) string {
	const prefix = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return ""
	}
	return authHeader[len(prefix):]
}

// StartSession opens a new booking wizard. A signed-in caller is attached
// as the booking user; anonymous callers can sign in later.
func (h *HandlerBundle) StartSession(c *gin.Context) {
	var input struct {
		Mode models.BookingMode `json:"mode"`
	}
	// An empty or absent body is fine; mode defaults to course.
	_ = c.ShouldBindJSON(&input)

	sessionID, state, err := h.Sessions.StartSession(h.optionalUser(c), input.Mode)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": sessionID, "state": state})
}

// GetSessionState returns the wizard snapshot for rendering.
func (h *HandlerBundle) GetSessionState(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// EndSession abandons a wizard. Ending an unknown session is a no-op.
func (h *HandlerBundle) EndSession(c *gin.Context) {
	h.Sessions.EndSession(c.Param("sessionID"))
	c.Status(http.StatusNoContent)
}

// SetSessionMode switches between the course and consultation flows.
func (h *HandlerBundle) SetSessionMode(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	var input struct {
		Mode models.BookingMode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := w.SetMode(input.Mode); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// SelectService picks the course being booked. Inactive courses are not
// offered for booking.
func (h *HandlerBundle) SelectService(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	course, err := h.Catalog.GetCourse(input.ServiceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	if !course.IsActive {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "course is not open for booking", "code": "serviceInactive"})
		return
	}
	w.SelectService(course)
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// SelectDate picks the booking date.
func (h *HandlerBundle) SelectDate(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.ParseInLocation(dateLayout, input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}
	if err := w.SelectDate(date); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// SelectTimeSlot picks one of the generated slots for the selected date.
func (h *HandlerBundle) SelectTimeSlot(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	var input struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state := w.State()
	if state.SelectedDate == "" || state.SelectedService == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "select a service and date first", "code": "dateRequired"})
		return
	}
	date, err := time.ParseInLocation(dateLayout, state.SelectedDate, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "stored date is invalid", err.Error())
		return
	}

	slots := schedule.GenerateTimeSlots(date, state.SelectedService.Duration, schedule.HashOracle{})
	for _, slot := range slots {
		if slot.ID == input.SlotID {
			if err := w.SelectTimeSlot(slot); err != nil {
				respondBookingError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"state": w.State()})
			return
		}
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown time slot for the selected date", "code": "slotUnavailable"})
}

// SetCustomer stores the customer details collected at step 3.
func (h *HandlerBundle) SetCustomer(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer details", "details": err.Error()})
		return
	}
	if err := w.SetCustomer(customer); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// AttachSessionUser binds the authenticated caller to an already-open
// wizard, typically after a mid-flow sign-in.
func (h *HandlerBundle) AttachSessionUser(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	userID := c.GetString("userID")
	u, err := h.Auth.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	w.SetBookingUser(u)
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// AdvanceSession moves the wizard forward one step.
func (h *HandlerBundle) AdvanceSession(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if err := w.Advance(); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// BackSession moves the wizard to the preceding applicable step.
func (h *HandlerBundle) BackSession(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if err := w.Back(); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// ResetSession returns the wizard to its initial defaults.
func (h *HandlerBundle) ResetSession(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	w.Reset()
	c.JSON(http.StatusOK, gin.H{"state": w.State()})
}

// ConfirmSession finalizes the booking and appends it to the ledger.
func (h *HandlerBundle) ConfirmSession(c *gin.Context) {
	w, err := h.Sessions.Workflow(c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	b, err := w.Confirm(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b, "state": w.State()})
}

// GetTimeSlots returns the candidate slots for a date and course,
// independent of any session.
func (h *HandlerBundle) GetTimeSlots(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query param must be formatted YYYY-MM-DD"})
		return
	}

	duration := 60
	if serviceID := c.Query("serviceId"); serviceID != "" {
		course, err := h.Catalog.GetCourse(serviceID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
			return
		}
		duration = course.Duration
	}

	slots := schedule.GenerateTimeSlots(date, duration, schedule.HashOracle{})
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

// GetDateAvailability reports whether a calendar date can be booked at all.
func (h *HandlerBundle) GetDateAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query param must be formatted YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      dateStr,
		"available": schedule.IsDateAvailable(date, time.Now()),
	})
}

// ListBookings returns the full ledger. Back-office only.
func (h *HandlerBundle) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Ledger.List()})
}

// GetBooking returns a single ledger entry.
func (h *HandlerBundle) GetBooking(c *gin.Context) {
	b, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListMyBookings returns the caller's bookings, matched by customer email.
func (h *HandlerBundle) ListMyBookings(c *gin.Context) {
	u, err := h.Auth.GetUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.Ledger.ListByEmail(u.Email)})
}

// CancelBooking cancels without computing a refund.
func (h *HandlerBundle) CancelBooking(c *gin.Context) {
	b, err := h.Ledger.Cancel(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBookingWithRefund cancels and settles the refund per the notice
// policy.
func (h *HandlerBundle) CancelBookingWithRefund(c *gin.Context) {
	var input struct {
		Reason     string `json:"reason"`
		RefundType string `json:"refundType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Ledger.CancelWithRefund(c.Request.Context(), c.Param("id"), input.Reason, input.RefundType)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RescheduleBooking moves a booking to a new date and slot, recording the
// prior schedule in its history.
func (h *HandlerBundle) RescheduleBooking(c *gin.Context) {
	var input struct {
		Date   string `json:"date" binding:"required"`
		SlotID string `json:"slotId" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}
	if !schedule.IsDateAvailable(date, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is in the past or falls on a closed day", "code": "dateUnavailable"})
		return
	}

	current, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	slot, ok := findSlot(date, current.Service.Duration, input.SlotID)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown time slot for the chosen date", "code": "slotUnavailable"})
		return
	}
	if !slot.Available {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "the chosen time slot is not available", "code": "slotUnavailable"})
		return
	}
	b, err := h.Ledger.Reschedule(current.ID, input.Date, slot, input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// callerEmail resolves the signed-in caller's account email.
func (h *HandlerBundle) callerEmail(c *gin.Context) (string, bool) {
	u, err := h.Auth.GetUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return "", false
	}
	return u.Email, true
}

// CancelMyBooking lets the booking's own customer cancel with a refund
// choice, subject to the 24-hour notice window.
func (h *HandlerBundle) CancelMyBooking(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	var input struct {
		Reason     string `json:"reason"`
		RefundType string `json:"refundType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Ledger.CancelOwnedWithRefund(c.Request.Context(), c.Param("id"), email, input.Reason, input.RefundType)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RescheduleMyBooking lets the booking's own customer move it to a new
// date and slot, subject to the 24-hour notice window.
func (h *HandlerBundle) RescheduleMyBooking(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	var input struct {
		Date   string `json:"date" binding:"required"`
		SlotID string `json:"slotId" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}
	if !schedule.IsDateAvailable(date, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is in the past or falls on a closed day", "code": "dateUnavailable"})
		return
	}

	current, err := h.Ledger.Get(c.Param("id"))
	if err != nil || !strings.EqualFold(current.CustomerEmail, email) {
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrBookingNotFound.Error()})
		return
	}

	slot, ok := findSlot(date, current.Service.Duration, input.SlotID)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown time slot for the chosen date", "code": "slotUnavailable"})
		return
	}
	if !slot.Available {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "the chosen time slot is not available", "code": "slotUnavailable"})
		return
	}

	b, err := h.Ledger.RescheduleOwned(current.ID, email, input.Date, slot, input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// TransferMyBooking lets the booking's own customer hand it to someone
// else, subject to the 24-hour notice window.
func (h *HandlerBundle) TransferMyBooking(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	var input struct {
		Customer models.Customer `json:"customer" binding:"required"`
		Reason   string          `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Ledger.TransferOwned(c.Param("id"), email, input.Customer, input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// findSlot regenerates the slot grid for a date and picks the slot with
// the given ID.
func findSlot(date time.Time, durationMin int, slotID string) (models.TimeSlot, bool) {
	for _, slot := range schedule.GenerateTimeSlots(date, durationMin, schedule.HashOracle{}) {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

// TransferBooking reassigns a booking to a different customer, recording
// the identity change in its history.
func (h *HandlerBundle) TransferBooking(c *gin.Context) {
	var input struct {
		Customer models.Customer `json:"customer" binding:"required"`
		Reason   string          `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Ledger.Transfer(c.Param("id"), input.Customer, input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
