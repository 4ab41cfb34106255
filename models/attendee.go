package models

import "time"

// Attendee is a dependent/proxy profile owned by exactly one parent user.
// Created explicitly through management endpoints, or implicitly when a
// booking is completed for someone other than the signed-in user.
type Attendee struct {
	ID               string    `json:"id"`
	ParentUserID     string    `json:"parentUserId"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"` // empty when never supplied
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	MedicalInfo      string    `json:"medicalInfo,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
