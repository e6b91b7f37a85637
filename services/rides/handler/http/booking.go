package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/utils"
	"github.com/ridelink/ridelink/services/rides"
)

// BookingHandler handles HTTP requests for seat booking operations
type BookingHandler struct {
	rideUC rides.RideUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(rideUC rides.RideUC) *BookingHandler {
	return &BookingHandler{
		rideUC: rideUC,
	}
}

// BookSeats allocates seats on a ride
func (h *BookingHandler) BookSeats(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	var req models.SeatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.rideUC.BookSeats(c.Request().Context(), rideID, &req)
	if err != nil {
		if conflict, ok := rides.AsCapacityConflict(err); ok {
			return utils.ConflictResponse(c, "not enough seats available", models.BookingRejection{
				RideID:   conflict.RideID,
				Occupied: conflict.Occupied,
				Capacity: conflict.Capacity,
				Reason:   "not enough seats available",
			})
		}
		if errors.Is(err, rides.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, rides.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "booking not found")
		}
		logger.Error("Failed to book seats",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to book seats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seats booked", result)
}

// CancelSeats releases a booking's seats
func (h *BookingHandler) CancelSeats(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	var req models.SeatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.rideUC.CancelSeats(c.Request().Context(), rideID, &req)
	if err != nil {
		if errors.Is(err, rides.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, rides.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "booking not found")
		}
		logger.Error("Failed to cancel seats",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to cancel seats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seats released", result)
}

// CorrectOccupancy applies a driver-reported occupancy value
func (h *BookingHandler) CorrectOccupancy(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	var correction models.OccupancyCorrection
	if err := c.Bind(&correction); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	correction.RideID = rideID

	result, err := h.rideUC.CorrectOccupancy(c.Request().Context(), &correction)
	if err != nil {
		if errors.Is(err, rides.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, rides.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "booking not found")
		}
		logger.Error("Failed to correct occupancy",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to correct occupancy")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Occupancy updated", result)
}

// GetBooking returns the durable occupancy record with its passengers
func (h *BookingHandler) GetBooking(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	booking, err := h.rideUC.GetBooking(c.Request().Context(), rideID)
	if err != nil {
		if errors.Is(err, rides.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "booking not found")
		}
		logger.Error("Failed to get booking",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", booking)
}
