package models

// Customer is the booking-time snapshot of who the appointment is for.
// It has no independent identity unless promoted to an Attendee.
type Customer struct {
	Name             string `json:"name" binding:"required" validate:"required"`
	Email            string `json:"email" binding:"required,email" validate:"required,email"`
	Phone            string `json:"phone" binding:"required" validate:"required"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"` // "YYYY-MM-DD"
	Address          string `json:"address,omitempty"`
	MedicalInfo      string `json:"medicalInfo,omitempty"`
	Notes            string `json:"notes,omitempty"`
}
