package catalog

import "bookease/models"

// seed loads the demo catalog: a handful of courses and two terms.
func (s *DefaultService) seed() {
	now := s.Now()

	s.courses = []models.Course{
		{
			ID:              "course-yoga-basics",
			Title:           "Yoga Basics",
			Description:     "A gentle introduction to foundational yoga postures and breathing.",
			Instructor:      "Maya Chen",
			Duration:        60,
			Price:           20,
			MaxParticipants: 15,
			Category:        "Yoga",
			Difficulty:      "beginner",
			Location:        "Studio A",
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "course-vinyasa-flow",
			Title:           "Vinyasa Flow",
			Description:     "Dynamic flowing sequences linking breath and movement.",
			Instructor:      "Maya Chen",
			Duration:        90,
			Price:           28,
			MaxParticipants: 12,
			Category:        "Yoga",
			Difficulty:      "intermediate",
			Requirements:    "At least six months of regular practice.",
			Location:        "Studio A",
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "course-pilates-core",
			Title:           "Pilates Core",
			Description:     "Mat pilates focused on core strength and posture.",
			Instructor:      "Daniel Okoro",
			Duration:        60,
			Price:           24,
			MaxParticipants: 10,
			Category:        "Pilates",
			Difficulty:      "beginner",
			Location:        "Studio B",
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "course-strength-foundations",
			Title:           "Strength Foundations",
			Description:     "Small-group strength training covering the main lifts.",
			Instructor:      "Priya Nair",
			Duration:        120,
			Price:           35,
			MaxParticipants: 8,
			Category:        "Fitness",
			Difficulty:      "beginner",
			Location:        "Gym Floor",
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "course-meditation",
			Title:           "Meditation & Breathwork",
			Description:     "Guided meditation and breathing techniques for stress relief.",
			Instructor:      "Daniel Okoro",
			Duration:        30,
			Price:           12,
			MaxParticipants: 20,
			Category:        "Wellness",
			Difficulty:      "beginner",
			Location:        "Studio B",
			IsActive:        false,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	s.terms = []models.Term{
		{
			ID:          "term-spring",
			Name:        "Spring 2026",
			StartDate:   "2026-03-01",
			EndDate:     "2026-05-31",
			IsActive:    true,
			Description: "Spring semester courses",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "term-summer",
			Name:        "Summer 2026",
			StartDate:   "2026-06-01",
			EndDate:     "2026-08-31",
			IsActive:    true,
			Description: "Summer intensive courses",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
