package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookease/models"
)

func TestSeededCatalog(t *testing.T) {
	s := NewService(zap.NewNop())

	all := s.Courses()
	active := s.ActiveCourses()
	assert.Greater(t, len(all), len(active), "seed includes at least one inactive course")

	course, err := s.GetCourse("course-yoga-basics")
	require.NoError(t, err)
	assert.Equal(t, "Yoga Basics", course.Title)
	assert.Equal(t, 20.0, course.Price)

	for _, c := range active {
		assert.True(t, c.IsActive)
	}

	assert.Len(t, s.Terms(), 2)
}

func TestCourseCRUD(t *testing.T) {
	s := NewService(zap.NewNop())

	id := s.AddCourse(models.Course{Title: "Aqua Fit", Duration: 45, Price: 18, MaxParticipants: 10, IsActive: true})
	assert.Contains(t, id, "course-")

	course, err := s.GetCourse(id)
	require.NoError(t, err)
	created := course.CreatedAt

	course.Price = 22
	require.NoError(t, s.UpdateCourse(id, course))
	updated, err := s.GetCourse(id)
	require.NoError(t, err)
	assert.Equal(t, 22.0, updated.Price)
	assert.Equal(t, created, updated.CreatedAt, "updates keep the creation time")

	require.NoError(t, s.ToggleCourseStatus(id))
	toggled, err := s.GetCourse(id)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	require.NoError(t, s.DeleteCourse(id))
	_, err = s.GetCourse(id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.UpdateCourse("course-missing", models.Course{}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCourse("course-missing"), ErrNotFound)
}

func TestDeleteCourseCascades(t *testing.T) {
	s := NewService(zap.NewNop())

	courseID := s.AddCourse(models.Course{Title: "Spin", Duration: 45, MaxParticipants: 12, IsActive: true})
	termID := s.AddTerm(models.Term{Name: "Fall 2026", StartDate: "2026-09-01", EndDate: "2026-11-30", IsActive: true})

	_, err := s.AddRecurringSchedule(models.RecurringSchedule{CourseID: courseID, TermID: termID, DayOfWeek: 2, StartTime: "10:00", EndTime: "10:45"})
	require.NoError(t, err)
	_, err = s.AddSchedule(models.CourseSchedule{CourseID: courseID, Date: "2026-09-08", StartTime: "10:00", EndTime: "10:45"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCourse(courseID))

	for _, r := range s.RecurringSchedules() {
		assert.NotEqual(t, courseID, r.CourseID)
	}
	for _, sc := range s.Schedules() {
		assert.NotEqual(t, courseID, sc.CourseID)
	}
}

func TestDeleteTermCascades(t *testing.T) {
	s := NewService(zap.NewNop())

	courseID := s.AddCourse(models.Course{Title: "Spin", Duration: 45, MaxParticipants: 12, IsActive: true})
	termID := s.AddTerm(models.Term{Name: "Fall 2026", StartDate: "2026-09-01", EndDate: "2026-11-30", IsActive: true})
	_, err := s.AddRecurringSchedule(models.RecurringSchedule{CourseID: courseID, TermID: termID, DayOfWeek: 2, StartTime: "10:00", EndTime: "10:45"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTerm(termID))
	for _, r := range s.RecurringSchedules() {
		assert.NotEqual(t, termID, r.TermID)
	}
}

func TestRecurringScheduleValidatesReferences(t *testing.T) {
	s := NewService(zap.NewNop())
	termID := s.AddTerm(models.Term{Name: "Fall 2026"})

	_, err := s.AddRecurringSchedule(models.RecurringSchedule{CourseID: "course-missing", TermID: termID})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddRecurringSchedule(models.RecurringSchedule{CourseID: "course-yoga-basics", TermID: "term-missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleDefaultsAndEnrollment(t *testing.T) {
	s := NewService(zap.NewNop())

	courseID := s.AddCourse(models.Course{Title: "Spin", Duration: 45, MaxParticipants: 2, IsActive: true})
	scheduleID, err := s.AddSchedule(models.CourseSchedule{CourseID: courseID, Date: "2026-09-08", StartTime: "10:00", EndTime: "10:45"})
	require.NoError(t, err)

	var sched models.CourseSchedule
	for _, sc := range s.Schedules() {
		if sc.ID == scheduleID {
			sched = sc
		}
	}
	assert.Equal(t, 2, sched.AvailableSpots, "spots default to the course capacity")
	assert.Equal(t, "scheduled", sched.Status)

	require.NoError(t, s.EnrollParticipant(scheduleID, "cust-1"))
	// Enrolling the same customer twice is a no-op.
	require.NoError(t, s.EnrollParticipant(scheduleID, "cust-1"))
	require.NoError(t, s.EnrollParticipant(scheduleID, "cust-2"))

	assert.ErrorIs(t, s.EnrollParticipant(scheduleID, "cust-3"), ErrScheduleFull)
	assert.ErrorIs(t, s.EnrollParticipant("session-missing", "cust-1"), ErrNotFound)

	for _, sc := range s.Schedules() {
		if sc.ID == scheduleID {
			assert.Equal(t, 0, sc.AvailableSpots)
			assert.Len(t, sc.EnrolledParticipants, 2)
		}
	}
}
