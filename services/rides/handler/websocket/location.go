package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/rides"
)

// handleLocationUpdate processes live location reports from drivers
func (m *WebSocketManager) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid location format")
	}

	if update.DriverID == "" {
		update.DriverID = client.UserID
	}
	if update.CreatedAt.IsZero() {
		update.CreatedAt = time.Now()
	}

	if err := m.rideUC.UpdateLocation(context.Background(), &update); err != nil {
		if errors.Is(err, rides.ErrRideNotActive) {
			return m.manager.SendErrorMessage(client.Conn, constants.ErrorRideNotActive, err.Error())
		}
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, err.Error())
	}
	return nil
}
