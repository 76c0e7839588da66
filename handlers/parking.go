package handlers

import (
	"errors"
	"net/http"

	slotsRepo "parkwise/database/repository/slots"
	"parkwise/models"
	"parkwise/services/maps"
	"parkwise/services/parking"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParkingHandler exposes the parking flows over HTTP.
type ParkingHandler struct {
	Service parking.Service
}

// NewParkingHandler builds a handler around the given orchestrator service.
func NewParkingHandler(svc parking.Service) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

// GetParkingSlots handles POST /parking/get_parking_slots.
func (h *ParkingHandler) GetParkingSlots(c *gin.Context) {
	var query models.SlotQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	lots, err := h.Service.ListNearbySlots(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parking_spots": lots})
}

// PredictParkingAvailability handles POST /parking/predict_parking_availability.
func (h *ParkingHandler) PredictParkingAvailability(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	predicted, err := h.Service.PredictAvailability(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"predicted_parking_spots": predicted})
}

// BookParking handles POST /parking/book_parking.
func (h *ParkingHandler) BookParking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Book(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot booked successfully!"})
}

// CancelBooking handles POST /parking/cancel_booking.
func (h *ParkingHandler) CancelBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled successfully!"})
}

// respondError is the single place domain errors become HTTP statuses.
func (h *ParkingHandler) respondError(c *gin.Context, err error) {
	var validationErr parking.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, maps.ErrNoParkingFound):
		utils.JSONError(c, http.StatusNotFound, "No parking spots found nearby")
	case errors.Is(err, maps.ErrLocationNotFound):
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get location coordinates")
	case errors.Is(err, slotsRepo.ErrLotNotFound):
		utils.JSONError(c, http.StatusNotFound, "Parking lot not found")
	case errors.Is(err, slotsRepo.ErrNoSlotsLeft):
		utils.JSONError(c, http.StatusBadRequest, "No available slots left")
	case errors.Is(err, slotsRepo.ErrNotBooked):
		utils.JSONError(c, http.StatusBadRequest, "User has not booked this slot")
	default:
		getLogger(c).Error("Parking flow failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
