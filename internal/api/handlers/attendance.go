package handlers

import (
	"errors"
	"net/http"

	"guard-ops-backend/internal/auth"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles HTTP requests for attendance actions
type AttendanceHandler struct {
	service service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(service service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// MarkAttendance handles POST /api/v1/attendance/entries/:id/mark
// @Summary Mark attendance on a schedule entry
// @Description Record the outcome of one scheduled day. A covering guard forces the replacement outcome; with no explicit outcome the entry is marked worked. The entry becomes manually overridden.
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry ID (UUID)"
// @Param request body service.MarkAttendanceRequest true "Attendance action"
// @Success 200 {object} models.ScheduleEntry "Updated entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /attendance/entries/{id}/mark [post]
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID: invalid UUID format"})
		return
	}

	var req service.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.MarkAttendance(entryID, &req, auth.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidOutcome), errors.Is(err, apperrors.ErrGuardNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// MarkExtraShift handles POST /api/v1/attendance/extra-shift
// @Summary Record a shift worked outside the generated plan
// @Description Locate the entry by post and date, mark it worked and append a ledger record
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body service.MarkExtraShiftRequest true "Extra shift data"
// @Success 200 {object} models.ScheduleEntry "Updated entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "No schedule entry exists for this post and date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /attendance/extra-shift [post]
func (h *AttendanceHandler) MarkExtraShift(c *gin.Context) {
	var req service.MarkExtraShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.MarkExtraShift(&req, auth.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoScheduleForDate):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record extra shift", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UndoAttendance handles POST /api/v1/attendance/entries/:id/undo
// @Summary Undo an attendance action
// @Description Restore an entry to the planned state its stored cycle phase implies and clear the manual override
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry ID (UUID)"
// @Success 200 {object} models.ScheduleEntry "Restored entry"
// @Failure 400 {object} ErrorResponse "Invalid entry ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /attendance/entries/{id}/undo [post]
func (h *AttendanceHandler) UndoAttendance(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID: invalid UUID format"})
		return
	}

	entry, err := h.service.Undo(entryID, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to undo attendance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
