package models

import "time"

// User is an account that can sign in and make bookings, possibly on
// behalf of its attendees.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	PasswordHash     string    `json:"-"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	Address          string    `json:"address,omitempty"`
	MedicalInfo      string    `json:"medicalInfo,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	IsActive         bool      `json:"isActive"`
}

// Admin is a back-office account for catalog and booking operations.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // "admin" or "super_admin"
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	IsActive     bool      `json:"isActive"`
}
