package models

// Wizard steps. Step 3 only exists in course mode; consultation skips it.
const (
	StepService  = 1
	StepDateTime = 2
	StepCustomer = 3
	StepConfirm  = 4
	StepSuccess  = 5
)

// BookingState is the in-progress wizard snapshot exposed to the
// presentation layer. Transient: owned by one wizard session and never
// persisted.
type BookingState struct {
	SelectedService  *Course     `json:"selectedService,omitempty"`
	SelectedDate     string      `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	SelectedTimeSlot *TimeSlot   `json:"selectedTimeSlot,omitempty"`
	Customer         *Customer   `json:"customer,omitempty"`
	BookingUser      *User       `json:"bookingUser,omitempty"`
	CurrentStep      int         `json:"currentStep"`
	Mode             BookingMode `json:"mode"`
}

// DefaultBookingState is the wizard's initial state: step 1, course mode,
// nothing selected.
func DefaultBookingState() BookingState {
	return BookingState{
		CurrentStep: StepService,
		Mode:        ModeCourse,
	}
}
