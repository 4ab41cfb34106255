package analytics

import (
	"math"
	"sort"

	"bookease/models"
)

// fillRateWindowDays is the horizon used to estimate capacity when
// computing the fill rate.
const fillRateWindowDays = 30

// Compute derives the reporting snapshot from the booking ledger and the
// course catalog. It is a pure function over its inputs.
func Compute(bookings []models.Booking, courses []models.Course) models.Analytics {
	var out models.Analytics
	out.Revenue.ByProgram = make(map[string]float64)
	out.Revenue.ByLocation = make(map[string]float64)
	out.Revenue.ByMonth = make(map[string]float64)

	countByService := make(map[string]int)

	for _, b := range bookings {
		out.Bookings.Total++
		switch b.Status {
		case models.StatusConfirmed:
			out.Bookings.Confirmed++
		case models.StatusCancelled:
			out.Bookings.Cancelled++
		}

		if b.Status == models.StatusConfirmed {
			countByService[b.ServiceID]++
			if b.PaymentStatus == models.PaymentPaid {
				out.Revenue.Total += b.TotalPrice
				out.Revenue.ByProgram[b.Service.Name] += b.TotalPrice
				location := b.Service.Location
				if location == "" {
					location = "Main Location"
				}
				out.Revenue.ByLocation[location] += b.TotalPrice
				if len(b.Date) >= 7 {
					out.Revenue.ByMonth[b.Date[:7]] += b.TotalPrice
				}
			}
		}

		if b.PaymentStatus == models.PaymentRefunded || b.PaymentStatus == models.PaymentStoreCredit {
			out.Refunds.Total++
			out.Refunds.Amount += b.RefundAmount + b.StoreCreditAmount
		}
	}

	totalCapacity := 0
	for _, c := range courses {
		out.Courses.Total++
		if c.IsActive {
			out.Courses.Active++
			totalCapacity += c.MaxParticipants
		}
	}

	if totalCapacity > 0 {
		rate := float64(out.Bookings.Confirmed) / float64(totalCapacity*fillRateWindowDays) * 100
		out.Bookings.FillRate = math.Round(rate*100) / 100
	}

	out.Courses.MostPopular = mostPopular(courses, countByService)
	return out
}

// mostPopular returns up to five courses ordered by confirmed booking
// count, courses with zero bookings excluded.
func mostPopular(courses []models.Course, counts map[string]int) []models.CoursePopularity {
	var ranked []models.CoursePopularity
	for _, c := range courses {
		if n := counts[c.ID]; n > 0 {
			ranked = append(ranked, models.CoursePopularity{Course: c, BookingCount: n})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BookingCount > ranked[j].BookingCount
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}
