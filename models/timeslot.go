package models

// TimeSlot is a concrete bookable window on a specific date.
// Slots are ephemeral: regenerated on every date selection and only
// persisted as part of a confirmed booking.
type TimeSlot struct {
	ID        string `json:"id"`        // "<date>-<startTime>", e.g. "2026-09-01-09:30"
	StartTime string `json:"startTime"` // "HH:MM", 24h
	EndTime   string `json:"endTime"`   // "HH:MM", 24h
	Available bool   `json:"available"`
}
