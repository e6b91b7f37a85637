package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/constants"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	pkgws "github.com/ridelink/ridelink/internal/pkg/websocket"
	"github.com/ridelink/ridelink/services/rides"
)

// WebSocketManager extends the base WebSocket manager for ride-specific functionality
type WebSocketManager struct {
	rideUC  rides.RideUC
	manager *pkgws.Manager
}

// NewWebSocketManager creates a new WebSocket manager for the ride service
func NewWebSocketManager(
	rideUC rides.RideUC,
	manager *pkgws.Manager,
) *WebSocketManager {
	return &WebSocketManager{
		rideUC:  rideUC,
		manager: manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	m.manager.AddClient(client)

	// Drivers receive their own room's events for the whole connection
	if client.Role == "driver" {
		m.manager.JoinRoom(constants.DriverRoom(client.UserID), client.UserID)
	}

	defer func() {
		m.rideUC.ReleaseSearcher(client.UserID)
		m.manager.RemoveClient(client.UserID)
	}()

	return m.messageLoop(client)
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventRideStart:
		return m.handleRideStart(client, wsMsg.Data)
	case constants.EventLocationUpdate:
		return m.handleLocationUpdate(client, wsMsg.Data)
	case constants.EventRideEnd:
		return m.handleRideEnd(client, wsMsg.Data)
	case constants.EventRideCancel:
		return m.handleRideCancel(client, wsMsg.Data)
	case constants.EventRideSubscribe:
		return m.handleRideSubscribe(client, wsMsg.Data)
	case constants.EventRouteSearch:
		return m.handleRouteSearch(client, wsMsg.Data)
	case constants.EventRideAccept:
		return m.handleRideAccept(client, wsMsg.Data)
	case constants.EventSeatBook:
		return m.handleSeatBook(client, wsMsg.Data)
	case constants.EventOccupancySet:
		return m.handleOccupancySet(client, wsMsg.Data)
	default:
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
