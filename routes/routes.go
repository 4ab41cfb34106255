package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookease/handlers"
	"bookease/middleware"
	"bookease/utils"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.LoginUser)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.Auth))
		api.POST("/logout", hb.Logout)
		api.GET("/me", hb.GetProfile)
		api.PUT("/me", hb.UpdateProfile)
		api.GET("/me/bookings", hb.ListMyBookings)
		api.POST("/me/bookings/:id/cancel", hb.CancelMyBooking)
		api.POST("/me/bookings/:id/reschedule", hb.RescheduleMyBooking)
		api.POST("/me/bookings/:id/transfer", hb.TransferMyBooking)
	}
}

// RegisterAttendeeRoutes registers attendee management endpoints. All of
// them require a signed-in user; attendees belong to the caller.
func RegisterAttendeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/attendees")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Auth))
		api.GET("", hb.ListAttendees)
		api.POST("", hb.AddAttendee)
		api.GET("/:id", hb.GetAttendee)
		api.PATCH("/:id", hb.UpdateAttendee)
		api.DELETE("/:id", hb.DeleteAttendee)
	}
}

// RegisterCatalogRoutes registers the public catalog surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/courses", hb.ListActiveCourses)
		api.GET("/courses/:id", hb.GetCourse)
		api.GET("/terms", hb.ListTerms)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm BookEase",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterBookingRoutes sets up the endpoints for the reservation wizard
// and slot lookups. The wizard itself is open to anonymous callers; the
// consultation flow enforces sign-in at its own step guard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/slots", hb.GetTimeSlots)
		bookingGroup.GET("/availability", hb.GetDateAvailability)

		bookingGroup.POST("/sessions", hb.StartSession)
		bookingGroup.GET("/sessions/:sessionID", hb.GetSessionState)
		bookingGroup.DELETE("/sessions/:sessionID", hb.EndSession)
		bookingGroup.PUT("/sessions/:sessionID/mode", hb.SetSessionMode)
		bookingGroup.PUT("/sessions/:sessionID/service", hb.SelectService)
		bookingGroup.PUT("/sessions/:sessionID/date", hb.SelectDate)
		bookingGroup.PUT("/sessions/:sessionID/timeslot", hb.SelectTimeSlot)
		bookingGroup.PUT("/sessions/:sessionID/customer", hb.SetCustomer)
		bookingGroup.POST("/sessions/:sessionID/advance", hb.AdvanceSession)
		bookingGroup.POST("/sessions/:sessionID/back", hb.BackSession)
		bookingGroup.POST("/sessions/:sessionID/reset", hb.ResetSession)
		bookingGroup.POST("/sessions/:sessionID/confirm", hb.ConfirmSession)

		bookingGroup.POST("/sessions/:sessionID/user",
			middleware.JWTAuthUserMiddleware(hb.Auth), hb.AttachSessionUser)
	}
}

// RegisterAdminRoutes sets up the back-office: booking ledger operations,
// catalog administration, and reporting.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.LoginAdmin)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.Auth))

		adminGroup.GET("/bookings", hb.ListBookings)
		adminGroup.GET("/bookings/:id", hb.GetBooking)
		adminGroup.POST("/bookings/:id/cancel", hb.CancelBooking)
		adminGroup.POST("/bookings/:id/refund", hb.CancelBookingWithRefund)
		adminGroup.POST("/bookings/:id/reschedule", hb.RescheduleBooking)
		adminGroup.POST("/bookings/:id/transfer", hb.TransferBooking)

		adminGroup.GET("/courses", hb.ListAllCourses)
		adminGroup.POST("/courses", hb.AddCourse)
		adminGroup.PUT("/courses/:id", hb.UpdateCourse)
		adminGroup.DELETE("/courses/:id", hb.DeleteCourse)
		adminGroup.POST("/courses/:id/toggle", hb.ToggleCourseStatus)

		adminGroup.POST("/terms", hb.AddTerm)
		adminGroup.PUT("/terms/:id", hb.UpdateTerm)
		adminGroup.DELETE("/terms/:id", hb.DeleteTerm)

		adminGroup.GET("/recurring-schedules", hb.ListRecurringSchedules)
		adminGroup.POST("/recurring-schedules", hb.AddRecurringSchedule)
		adminGroup.PUT("/recurring-schedules/:id", hb.UpdateRecurringSchedule)
		adminGroup.DELETE("/recurring-schedules/:id", hb.DeleteRecurringSchedule)

		adminGroup.GET("/schedules", hb.ListSchedules)
		adminGroup.POST("/schedules", hb.AddSchedule)
		adminGroup.PUT("/schedules/:id", hb.UpdateSchedule)
		adminGroup.DELETE("/schedules/:id", hb.DeleteSchedule)
		adminGroup.POST("/schedules/:id/enroll", hb.EnrollParticipant)

		adminGroup.GET("/analytics", hb.GetAnalytics)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAttendeeRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
