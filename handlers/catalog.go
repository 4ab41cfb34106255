package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookease/models"
	"bookease/services/catalog"
)

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrScheduleFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog operation failed"})
	}
}

// ListActiveCourses returns the courses offered for booking.
func (h *HandlerBundle) ListActiveCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.Catalog.ActiveCourses()})
}

// ListAllCourses returns every course, active or not. Back-office only.
func (h *HandlerBundle) ListAllCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.Catalog.Courses()})
}

// GetCourse returns a single course.
func (h *HandlerBundle) GetCourse(c *gin.Context) {
	course, err := h.Catalog.GetCourse(c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

// AddCourse creates a course.
func (h *HandlerBundle) AddCourse(c *gin.Context) {
	var input models.Course
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id := h.Catalog.AddCourse(input)
	c.JSON(http.StatusCreated, gin.H{"courseId": id})
}

// UpdateCourse replaces a course's editable fields.
func (h *HandlerBundle) UpdateCourse(c *gin.Context) {
	var input models.Course
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.UpdateCourse(c.Param("id"), input); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCourse removes a course and its schedules.
func (h *HandlerBundle) DeleteCourse(c *gin.Context) {
	if err := h.Catalog.DeleteCourse(c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleCourseStatus flips a course between active and inactive.
func (h *HandlerBundle) ToggleCourseStatus(c *gin.Context) {
	if err := h.Catalog.ToggleCourseStatus(c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTerms returns every term.
func (h *HandlerBundle) ListTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": h.Catalog.Terms()})
}

// AddTerm creates a term.
func (h *HandlerBundle) AddTerm(c *gin.Context) {
	var input models.Term
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id := h.Catalog.AddTerm(input)
	c.JSON(http.StatusCreated, gin.H{"termId": id})
}

// UpdateTerm replaces a term's editable fields.
func (h *HandlerBundle) UpdateTerm(c *gin.Context) {
	var input models.Term
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.UpdateTerm(c.Param("id"), input); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTerm removes a term and its recurring schedules.
func (h *HandlerBundle) DeleteTerm(c *gin.Context) {
	if err := h.Catalog.DeleteTerm(c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRecurringSchedules returns every weekly placement.
func (h *HandlerBundle) ListRecurringSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recurringSchedules": h.Catalog.RecurringSchedules()})
}

// AddRecurringSchedule places a course on a weekday within a term.
func (h *HandlerBundle) AddRecurringSchedule(c *gin.Context) {
	var input models.RecurringSchedule
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := h.Catalog.AddRecurringSchedule(input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"scheduleId": id})
}

// UpdateRecurringSchedule replaces a weekly placement.
func (h *HandlerBundle) UpdateRecurringSchedule(c *gin.Context) {
	var input models.RecurringSchedule
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.UpdateRecurringSchedule(c.Param("id"), input); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRecurringSchedule removes a weekly placement.
func (h *HandlerBundle) DeleteRecurringSchedule(c *gin.Context) {
	if err := h.Catalog.DeleteRecurringSchedule(c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSchedules returns every dated session.
func (h *HandlerBundle) ListSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schedules": h.Catalog.Schedules()})
}

// AddSchedule creates a dated session of a course.
func (h *HandlerBundle) AddSchedule(c *gin.Context) {
	var input models.CourseSchedule
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := h.Catalog.AddSchedule(input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"scheduleId": id})
}

// UpdateSchedule replaces a dated session.
func (h *HandlerBundle) UpdateSchedule(c *gin.Context) {
	var input models.CourseSchedule
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.UpdateSchedule(c.Param("id"), input); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSchedule removes a dated session.
func (h *HandlerBundle) DeleteSchedule(c *gin.Context) {
	if err := h.Catalog.DeleteSchedule(c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnrollParticipant adds a customer to a dated session.
func (h *HandlerBundle) EnrollParticipant(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.EnrollParticipant(c.Param("id"), input.CustomerID); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
