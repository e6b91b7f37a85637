package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
)

// handleRideStart processes ride announcements from drivers
func (m *WebSocketManager) handleRideStart(client *models.WebSocketClient, data json.RawMessage) error {
	var event models.RideStartEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid ride start format")
	}
	if event.DriverID == "" {
		event.DriverID = client.UserID
	}

	ride, err := m.rideUC.RideStart(context.Background(), &event)
	if err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidRide, err.Error())
	}

	// The announcing driver sees the registered snapshot immediately
	return m.manager.SendMessage(client.Conn, constants.EventRideInfo, ride)
}

// handleRideEnd processes ride completion from drivers
func (m *WebSocketManager) handleRideEnd(client *models.WebSocketClient, data json.RawMessage) error {
	var event models.RideEndEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid ride end format")
	}

	if err := m.rideUC.RideEnd(context.Background(), event.RideID); err != nil {
		return m.sendRideError(client, err)
	}
	return nil
}

// handleRideCancel processes ride cancellation from drivers
func (m *WebSocketManager) handleRideCancel(client *models.WebSocketClient, data json.RawMessage) error {
	var event models.RideEndEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid ride cancel format")
	}

	if err := m.rideUC.RideCancel(context.Background(), event.RideID); err != nil {
		return m.sendRideError(client, err)
	}
	return nil
}

// handleRideSubscribe joins the client to a ride's broadcast room and
// replies with the current snapshot
func (m *WebSocketManager) handleRideSubscribe(client *models.WebSocketClient, data json.RawMessage) error {
	var event models.RideEndEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid subscribe format")
	}

	ride, err := m.rideUC.Subscribe(context.Background(), client.UserID, event.RideID)
	if err != nil {
		return m.sendRideError(client, err)
	}
	return m.manager.SendMessage(client.Conn, constants.EventRideInfo, ride)
}

func (m *WebSocketManager) sendRideError(client *models.WebSocketClient, err error) error {
	code := constants.ErrorInternalError
	switch {
	case errors.Is(err, rides.ErrInvalidInput):
		code = constants.ErrorInvalidFormat
	case errors.Is(err, rides.ErrRideNotActive):
		code = constants.ErrorRideNotActive
	}
	return m.manager.SendErrorMessage(client.Conn, code, err.Error())
}
