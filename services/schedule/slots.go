package schedule

import (
	"fmt"
	"hash/fnv"
	"time"

	"bookease/models"
)

// Fixed daily booking window: 09:00-17:00 on 30-minute boundaries.
const (
	windowOpenMinute  = 9 * 60
	windowCloseMinute = 17 * 60
	slotInterval      = 30
)

// AvailabilityOracle decides whether a generated slot is bookable. The
// reference behavior was random per generation call; keeping it behind an
// interface makes the generator deterministic and lets a real availability
// check plug in later.
type AvailabilityOracle interface {
	SlotAvailable(slotID string) bool
}

// HashOracle is the default oracle: a stable hash of the slot ID marks
// roughly 70% of slots available, so repeated generations for the same
// date agree with each other.
type HashOracle struct{}

func (HashOracle) SlotAvailable(slotID string) bool {
	h := fnv.New32a()
	h.Write([]byte(slotID))
	return h.Sum32()%10 >= 3
}

// AllAvailable marks every slot available.
type AllAvailable struct{}

func (AllAvailable) SlotAvailable(string) bool { return true }

// GenerateTimeSlots produces the ordered candidate slots for a date and a
// service duration. A slot is emitted only when its end time stays within
// the closing bound.
func GenerateTimeSlots(date time.Time, durationMin int, oracle AvailabilityOracle) []models.TimeSlot {
	day := date.Format("2006-01-02")

	var slots []models.TimeSlot
	for start := windowOpenMinute; start < windowCloseMinute; start += slotInterval {
		end := start + durationMin
		if end > windowCloseMinute {
			continue
		}
		slot := models.TimeSlot{
			ID:        fmt.Sprintf("%s-%s", day, clock(start)),
			StartTime: clock(start),
			EndTime:   clock(end),
		}
		slot.Available = oracle.SlotAvailable(slot.ID)
		slots = append(slots, slot)
	}
	return slots
}

// IsDateAvailable reports whether a calendar date can be booked: not
// strictly before today, and not a Sunday.
func IsDateAvailable(date, now time.Time) bool {
	today := truncateToDay(now)
	day := truncateToDay(date)

	if day.Before(today) {
		return false
	}
	if day.Weekday() == time.Sunday {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
