package catalog

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"bookease/models"
)

// ErrNotFound is returned for unknown course, term, or schedule IDs.
var ErrNotFound = errors.New("catalog entry not found")

// ErrScheduleFull is returned when enrolling into a session with no
// remaining spots.
var ErrScheduleFull = errors.New("no available spots on this schedule")

// Service is the catalog collaborator: courses and their scheduling,
// maintained by the back office and read by the booking workflow.
type Service interface {
	Courses() []models.Course
	ActiveCourses() []models.Course
	GetCourse(id string) (models.Course, error)
	AddCourse(data models.Course) string
	UpdateCourse(id string, data models.Course) error
	DeleteCourse(id string) error
	ToggleCourseStatus(id string) error

	Terms() []models.Term
	AddTerm(data models.Term) string
	UpdateTerm(id string, data models.Term) error
	DeleteTerm(id string) error

	RecurringSchedules() []models.RecurringSchedule
	AddRecurringSchedule(data models.RecurringSchedule) (string, error)
	UpdateRecurringSchedule(id string, data models.RecurringSchedule) error
	DeleteRecurringSchedule(id string) error

	Schedules() []models.CourseSchedule
	AddSchedule(data models.CourseSchedule) (string, error)
	UpdateSchedule(id string, data models.CourseSchedule) error
	DeleteSchedule(id string) error
	EnrollParticipant(scheduleID, customerID string) error
}

// DefaultService implements Service over in-memory, mutex-guarded slices.
// Catalog data is demo-seeded and not durable.
type DefaultService struct {
	mu        sync.Mutex
	courses   []models.Course
	terms     []models.Term
	recurring []models.RecurringSchedule
	schedules []models.CourseSchedule

	Logger *zap.Logger
	Now    func() time.Time
}

func NewService(logger *zap.Logger) *DefaultService {
	s := &DefaultService{
		Logger: logger,
		Now:    time.Now,
	}
	s.seed()
	return s
}
