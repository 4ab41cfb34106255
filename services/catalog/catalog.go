package catalog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookease/models"
)

// Courses returns every course, active or not.
func (s *DefaultService) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// ActiveCourses returns the courses offered to the booking workflow.
func (s *DefaultService) ActiveCourses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Course
	for _, c := range s.courses {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *DefaultService) GetCourse(id string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, ErrNotFound
}

func (s *DefaultService) AddCourse(data models.Course) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	data.ID = "course-" + uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now
	s.courses = append(s.courses, data)
	s.Logger.Info("course added", zap.String("courseId", data.ID), zap.String("title", data.Title))
	return data.ID
}

// UpdateCourse replaces the editable fields; ID and creation time are kept.
func (s *DefaultService) UpdateCourse(id string, data models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		data.ID = id
		data.CreatedAt = s.courses[i].CreatedAt
		data.UpdatedAt = s.Now()
		s.courses[i] = data
		return nil
	}
	return ErrNotFound
}

// DeleteCourse removes a course and cascades to its schedules.
func (s *DefaultService) DeleteCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	kept := s.courses[:0]
	for _, c := range s.courses {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	s.courses = kept
	if !found {
		return ErrNotFound
	}

	keptSched := s.schedules[:0]
	for _, sc := range s.schedules {
		if sc.CourseID != id {
			keptSched = append(keptSched, sc)
		}
	}
	s.schedules = keptSched

	keptRec := s.recurring[:0]
	for _, r := range s.recurring {
		if r.CourseID != id {
			keptRec = append(keptRec, r)
		}
	}
	s.recurring = keptRec
	return nil
}

func (s *DefaultService) ToggleCourseStatus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses[i].IsActive = !s.courses[i].IsActive
			s.courses[i].UpdatedAt = s.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (s *DefaultService) Terms() []models.Term {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Term, len(s.terms))
	copy(out, s.terms)
	return out
}

func (s *DefaultService) AddTerm(data models.Term) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	data.ID = "term-" + uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now
	s.terms = append(s.terms, data)
	return data.ID
}

func (s *DefaultService) UpdateTerm(id string, data models.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.terms {
		if s.terms[i].ID != id {
			continue
		}
		data.ID = id
		data.CreatedAt = s.terms[i].CreatedAt
		data.UpdatedAt = s.Now()
		s.terms[i] = data
		return nil
	}
	return ErrNotFound
}

// DeleteTerm removes a term and cascades to its recurring schedules.
func (s *DefaultService) DeleteTerm(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	kept := s.terms[:0]
	for _, t := range s.terms {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.terms = kept
	if !found {
		return ErrNotFound
	}

	keptRec := s.recurring[:0]
	for _, r := range s.recurring {
		if r.TermID != id {
			keptRec = append(keptRec, r)
		}
	}
	s.recurring = keptRec
	return nil
}

func (s *DefaultService) RecurringSchedules() []models.RecurringSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RecurringSchedule, len(s.recurring))
	copy(out, s.recurring)
	return out
}

// AddRecurringSchedule validates that the referenced course and term exist.
func (s *DefaultService) AddRecurringSchedule(data models.RecurringSchedule) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findCourse(data.CourseID) == nil {
		return "", ErrNotFound
	}
	if !s.termExists(data.TermID) {
		return "", ErrNotFound
	}
	now := s.Now()
	data.ID = "schedule-" + uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now
	s.recurring = append(s.recurring, data)
	return data.ID, nil
}

func (s *DefaultService) UpdateRecurringSchedule(id string, data models.RecurringSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recurring {
		if s.recurring[i].ID != id {
			continue
		}
		data.ID = id
		data.CreatedAt = s.recurring[i].CreatedAt
		data.UpdatedAt = s.Now()
		s.recurring[i] = data
		return nil
	}
	return ErrNotFound
}

func (s *DefaultService) DeleteRecurringSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recurring[:0]
	found := false
	for _, r := range s.recurring {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	s.recurring = kept
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *DefaultService) Schedules() []models.CourseSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CourseSchedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// AddSchedule creates a dated session of a course. Available spots
// default to the course's capacity.
func (s *DefaultService) AddSchedule(data models.CourseSchedule) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.findCourse(data.CourseID)
	if course == nil {
		return "", ErrNotFound
	}
	data.ID = "session-" + uuid.NewString()
	if data.AvailableSpots == 0 {
		data.AvailableSpots = course.MaxParticipants
	}
	if data.Status == "" {
		data.Status = "scheduled"
	}
	if data.EnrolledParticipants == nil {
		data.EnrolledParticipants = []string{}
	}
	s.schedules = append(s.schedules, data)
	return data.ID, nil
}

func (s *DefaultService) UpdateSchedule(id string, data models.CourseSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.schedules {
		if s.schedules[i].ID != id {
			continue
		}
		data.ID = id
		if data.EnrolledParticipants == nil {
			data.EnrolledParticipants = s.schedules[i].EnrolledParticipants
		}
		s.schedules[i] = data
		return nil
	}
	return ErrNotFound
}

func (s *DefaultService) DeleteSchedule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.schedules[:0]
	found := false
	for _, sc := range s.schedules {
		if sc.ID == id {
			found = true
			continue
		}
		kept = append(kept, sc)
	}
	s.schedules = kept
	if !found {
		return ErrNotFound
	}
	return nil
}

// EnrollParticipant adds a customer to a session, decrementing its spot
// count. Double enrollment is a silent no-op.
func (s *DefaultService) EnrollParticipant(scheduleID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.schedules {
		sc := &s.schedules[i]
		if sc.ID != scheduleID {
			continue
		}
		for _, existing := range sc.EnrolledParticipants {
			if existing == customerID {
				return nil
			}
		}
		if sc.AvailableSpots <= 0 {
			return ErrScheduleFull
		}
		sc.EnrolledParticipants = append(sc.EnrolledParticipants, customerID)
		sc.AvailableSpots--
		return nil
	}
	return ErrNotFound
}

// callers hold the lock
func (s *DefaultService) findCourse(id string) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

func (s *DefaultService) termExists(id string) bool {
	for _, t := range s.terms {
		if t.ID == id {
			return true
		}
	}
	return false
}
