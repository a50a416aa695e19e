package server

import (
	"instaclone/internal/middleware"
	"instaclone/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationStream handles GET /ws/notifications. Each authenticated user
// gets a single live connection; a new connection replaces any existing one.
func (s *Server) NotificationStream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		// Set by WebSocketAuthRequired during the upgrade request.
		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		client := notifications.NewClient(s.directory, conn, userID)
		s.directory.Register(client)

		middleware.Logger.Info("notification stream connected", "user_id", userID)

		go client.WritePump()
		client.ReadPump()

		middleware.Logger.Info("notification stream disconnected", "user_id", userID)
	})
}
