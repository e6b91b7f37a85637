package websocket

import (
	"context"
	"encoding/json"

	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// handleRouteSearch registers the connection's search criteria and answers
// immediately with the current match set. Subsequent registry changes push
// fresh results to the same connection without another request.
func (m *WebSocketManager) handleRouteSearch(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.RouteSearchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid route search format")
	}

	result, err := m.rideUC.Search(context.Background(), client.UserID, &req)
	if err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, err.Error())
	}

	if result.None {
		return m.manager.SendMessage(client.Conn, constants.EventRouteNoMatches, result)
	}
	return m.manager.SendMessage(client.Conn, constants.EventRouteMatches, result)
}
