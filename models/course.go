package models

import "time"

// Course is a bookable offering managed by catalog administration.
// The booking workflow treats courses as read-only.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Instructor      string    `json:"instructor"`
	Duration        int       `json:"duration"` // minutes
	Price           float64   `json:"price"`
	MaxParticipants int       `json:"maxParticipants"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"` // "beginner", "intermediate", "advanced"
	Requirements    string    `json:"requirements,omitempty"`
	Location        string    `json:"location"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceSnapshot is the denormalized course data frozen onto a booking
// at confirmation time, so later catalog edits never rewrite history.
type ServiceSnapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
}

// Snapshot freezes the course fields the ledger keeps.
func (c Course) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		ID:          c.ID,
		Name:        c.Title,
		Description: c.Description,
		Duration:    c.Duration,
		Price:       c.Price,
		Category:    c.Category,
		Location:    c.Location,
	}
}

// Term groups recurring schedules into a named date range (e.g. "Spring 2026").
type Term struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"startDate"` // "YYYY-MM-DD"
	EndDate     string    `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecurringSchedule places a course on a fixed weekday within a term.
type RecurringSchedule struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"courseId"`
	TermID          string    `json:"termId"`
	DayOfWeek       int       `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	MaxParticipants int       `json:"maxParticipants"`
	Location        string    `json:"location"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CourseSchedule is a single dated session of a course with enrollment tracking.
type CourseSchedule struct {
	ID                   string   `json:"id"`
	CourseID             string   `json:"courseId"`
	Date                 string   `json:"date"`
	StartTime            string   `json:"startTime"`
	EndTime              string   `json:"endTime"`
	AvailableSpots       int      `json:"availableSpots"`
	EnrolledParticipants []string `json:"enrolledParticipants"`
	Status               string   `json:"status"` // "scheduled", "ongoing", "completed", "cancelled"
	Location             string   `json:"location,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}
