package models

// Analytics is the back-office reporting snapshot computed from the
// booking ledger and the course catalog.
type Analytics struct {
	Revenue  RevenueStats  `json:"revenue"`
	Bookings BookingStats  `json:"bookings"`
	Courses  CourseStats   `json:"courses"`
	Refunds  RefundStats   `json:"refunds"`
}

type RevenueStats struct {
	Total      float64            `json:"total"`
	ByProgram  map[string]float64 `json:"byProgram"`
	ByLocation map[string]float64 `json:"byLocation"`
	ByMonth    map[string]float64 `json:"byMonth"`
}

type BookingStats struct {
	Total     int     `json:"total"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	FillRate  float64 `json:"fillRate"` // percent
}

// CoursePopularity pairs a course with its confirmed booking count.
type CoursePopularity struct {
	Course       Course `json:"course"`
	BookingCount int    `json:"bookingCount"`
}

type CourseStats struct {
	Total       int                `json:"total"`
	Active      int                `json:"active"`
	MostPopular []CoursePopularity `json:"mostPopular"`
}

type RefundStats struct {
	Total  int     `json:"total"`
	Amount float64 `json:"amount"`
}
