package handlers

import (
	"errors"
	"net/http"

	"bizly/schedule"
	"bizly/services/booking"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the bookings screen and the day calendar.
type BookingHandler struct {
	BookingService booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// ListBookingsHandler handles GET /bookings?date=. Without a date it returns
// every booking.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	date := c.Query("date")

	var err error
	var bookings interface{}
	if date != "" {
		bookings, err = h.BookingService.ListByDate(date)
	} else {
		bookings, err = h.BookingService.ListAll()
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.BookingService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CreateBookingHandler handles POST /bookings. A time that collides with an
// active booking on the same day comes back as 409.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.BookingService.Create(input)
	if err != nil {
		var conflict booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		var invalid booking.ValidationError
		var badTime schedule.InvalidTimeError
		if errors.As(err, &invalid) || errors.As(err, &badTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Booking create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelBookingHandler handles POST /bookings/:id/cancel. The slot frees up
// immediately.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.BookingService.Cancel(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// CompleteBookingHandler handles POST /bookings/:id/complete.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.BookingService.Complete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking completed"})
}

// UpdateBookingNotesHandler handles PATCH /bookings/:id/notes.
func (h *BookingHandler) UpdateBookingNotesHandler(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.BookingService.UpdateNotes(c.Param("id"), req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.BookingService.Delete(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// AvailabilityHandler handles GET /bookings/availability?date=&selected=. It
// returns the full slot grid for the day with booked and selected flags, which
// the calendar renders directly.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameter", "date query parameter is required")
		return
	}

	slots, err := h.BookingService.DayAvailability(date, c.Query("selected"))
	if err != nil {
		var invalid booking.ValidationError
		var badTime schedule.InvalidTimeError
		if errors.As(err, &invalid) || errors.As(err, &badTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Availability projection failed",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
