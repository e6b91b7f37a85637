package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/models"
	nsqpkg "github.com/ridelink/ridelink/internal/pkg/nsq"
	"github.com/ridelink/ridelink/services/rides"
	"github.com/ridelink/ridelink/services/rides/handler/http"
	"github.com/ridelink/ridelink/services/rides/handler/websocket"
)

// Handler coordinates all protocol handlers for the ride service
type Handler struct {
	rideUC         rides.RideUC
	bookingHandler *http.BookingHandler
	wsManager      *websocket.WebSocketManager
	cfg            *models.Config
	consumers      []*nsqpkg.Consumer
}

// NewHandler creates and initializes all handlers
func NewHandler(
	rideUC rides.RideUC,
	bookingHandler *http.BookingHandler,
	wsManager *websocket.WebSocketManager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		rideUC:         rideUC,
		bookingHandler: bookingHandler,
		wsManager:      wsManager,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set("user_id", userID)
				}
				if role, exists := claims["role"]; exists {
					c.Set("role", role)
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Protected HTTP routes
	protected := e.Group("", h.GetJWTMiddleware())

	rideGroup := protected.Group("/rides")
	rideGroup.POST("/:id/seats", h.bookingHandler.BookSeats)
	rideGroup.DELETE("/:id/seats", h.bookingHandler.CancelSeats)
	rideGroup.PUT("/:id/occupancy", h.bookingHandler.CorrectOccupancy)
	rideGroup.GET("/:id/booking", h.bookingHandler.GetBooking)

	// WebSocket route; the connection manager performs its own JWT handshake
	e.GET("/ws", h.wsManager.HandleWebSocket)
}
