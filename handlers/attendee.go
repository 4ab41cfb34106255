package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookease/models"
	"bookease/services/attendee"
	"bookease/utils"
)

// ListAttendees returns the caller's attendee profiles.
func (h *HandlerBundle) ListAttendees(c *gin.Context) {
	list, err := h.Attendees.ListByParent(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load attendees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendees": list})
}

// AddAttendee creates (or merges into) an attendee profile owned by the
// caller.
func (h *HandlerBundle) AddAttendee(c *gin.Context) {
	var input struct {
		Name             string `json:"name" binding:"required"`
		Email            string `json:"email"`
		Phone            string `json:"phone"`
		DateOfBirth      string `json:"dateOfBirth"`
		EmergencyContact string `json:"emergencyContact"`
		MedicalInfo      string `json:"medicalInfo"`
		Allergies        string `json:"allergies"`
		Notes            string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Attendees.Add(c.Request.Context(), models.Attendee{
		ParentUserID:     c.GetString("userID"),
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		DateOfBirth:      input.DateOfBirth,
		EmergencyContact: input.EmergencyContact,
		MedicalInfo:      input.MedicalInfo,
		Allergies:        input.Allergies,
		Notes:            input.Notes,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save attendee", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attendeeId": id})
}

// GetAttendee returns one attendee profile. Callers can only read their
// own attendees.
func (h *HandlerBundle) GetAttendee(c *gin.Context) {
	a, err := h.Attendees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, attendee.ErrAttendeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load attendee", err.Error())
		return
	}
	if a.ParentUserID != c.GetString("userID") {
		c.JSON(http.StatusNotFound, gin.H{"error": attendee.ErrAttendeeNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendee": a})
}

// authorizeAttendee verifies the record (when it exists) belongs to the
// caller. Mutations on unknown IDs stay a silent no-op; mutations on
// someone else's attendee are indistinguishable from not-found.
func (h *HandlerBundle) authorizeAttendee(c *gin.Context, id string) bool {
	a, err := h.Attendees.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, attendee.ErrAttendeeNotFound) {
			return true
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load attendee", err.Error())
		return false
	}
	if a.ParentUserID != c.GetString("userID") {
		c.JSON(http.StatusNotFound, gin.H{"error": attendee.ErrAttendeeNotFound.Error()})
		return false
	}
	return true
}

// UpdateAttendee merges partial edits into an attendee profile owned by
// the caller. Editing an unknown ID is a silent no-op.
func (h *HandlerBundle) UpdateAttendee(c *gin.Context) {
	var updates attendee.Update
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !h.authorizeAttendee(c, c.Param("id")) {
		return
	}
	if err := h.Attendees.UpdateAttendee(c.Request.Context(), c.Param("id"), updates); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update attendee", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAttendee removes an attendee profile owned by the caller.
// Deleting an unknown ID is a silent no-op.
func (h *HandlerBundle) DeleteAttendee(c *gin.Context) {
	if !h.authorizeAttendee(c, c.Param("id")) {
		return
	}
	if err := h.Attendees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete attendee", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
