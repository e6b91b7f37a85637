package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
)

// handleRideAccept processes a rider accepting a matched ride. A capacity
// conflict answers only the requesting rider; nothing is broadcast.
func (m *WebSocketManager) handleRideAccept(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.BookingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid booking format")
	}
	if req.RiderID == "" {
		req.RiderID = client.UserID
	}
	if req.SeatCount <= 0 {
		req.SeatCount = 1
	}

	confirmation, err := m.rideUC.AcceptBooking(context.Background(), &req)
	if err != nil {
		if conflict, ok := rides.AsCapacityConflict(err); ok {
			return m.manager.SendMessage(client.Conn, constants.EventBookingError, models.BookingRejection{
				RideID:   conflict.RideID,
				Occupied: conflict.Occupied,
				Capacity: conflict.Capacity,
				Reason:   "not enough seats available",
			})
		}
		return m.sendRideError(client, err)
	}

	// The accepted rider follows the ride from here on
	m.manager.JoinRoom(constants.RideRoom(req.RideID), client.UserID)

	return m.manager.SendMessage(client.Conn, constants.EventBookingConfirmed, confirmation)
}

// handleSeatBook processes a plain seat allocation without passenger details
func (m *WebSocketManager) handleSeatBook(client *models.WebSocketClient, data json.RawMessage) error {
	var req struct {
		RideID    string  `json:"ride_id"`
		SeatCount int     `json:"seat_count"`
		Fare      float64 `json:"fare"`
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid seat booking format")
	}

	result, err := m.rideUC.BookSeats(context.Background(), req.RideID, &models.SeatRequest{
		RiderID:   client.UserID,
		SeatCount: req.SeatCount,
		Fare:      req.Fare,
	})
	if err != nil {
		if conflict, ok := rides.AsCapacityConflict(err); ok {
			return m.manager.SendMessage(client.Conn, constants.EventBookingError, models.BookingRejection{
				RideID:   conflict.RideID,
				Occupied: conflict.Occupied,
				Capacity: conflict.Capacity,
				Reason:   "not enough seats available",
			})
		}
		return m.sendRideError(client, err)
	}

	return m.manager.SendMessage(client.Conn, constants.EventStatusUpdated, result)
}

// handleOccupancySet processes a driver-reported occupancy correction
func (m *WebSocketManager) handleOccupancySet(client *models.WebSocketClient, data json.RawMessage) error {
	var correction models.OccupancyCorrection
	if err := json.Unmarshal(data, &correction); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid occupancy format")
	}

	result, err := m.rideUC.CorrectOccupancy(context.Background(), &correction)
	if err != nil {
		return m.sendRideError(client, err)
	}
	return m.manager.SendMessage(client.Conn, constants.EventStatusUpdated, result)
}
