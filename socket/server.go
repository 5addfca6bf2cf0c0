package socket

import (
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

// Server pushes match collection changes to subscribed clients. A client
// sends "subscribe" with its identity token and then receives
// "matchesUpdated" events for that user.
type Server struct {
	io     *socketio.Server
	logger *zap.Logger
}

// UserRoom is the room a user's clients join.
func UserRoom(userID string) string {
	return "user:" + userID
}

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer(verifier middleware.TokenVerifier, logger *zap.Logger) *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Debug("✅ Socket connected", zap.String("socketId", c.ID()))
		return nil
	})

	server.OnEvent("/", "subscribe", func(c socketio.Conn, data map[string]string) {
		userID, err := verifier.VerifyToken(data["token"])
		if err != nil {
			logger.Info("❌ Socket subscribe rejected", zap.String("socketId", c.ID()), zap.Error(err))
			c.Emit("subscribeError", "invalid token")
			return
		}
		c.Join(UserRoom(userID))
		logger.Debug("👥 Socket subscribed", zap.String("socketId", c.ID()), zap.String("userId", userID))
		c.Emit("subscribed", userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Warn("Socket error", zap.Error(err))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Debug("❌ Socket disconnected", zap.String("socketId", c.ID()), zap.String("reason", reason))
	})

	return &Server{io: server, logger: logger}
}

// MatchesChanged implements services.MatchNotifier.
func (s *Server) MatchesChanged(userID string, collections models.MatchCollections) {
	s.io.BroadcastToRoom("/", UserRoom(userID), "matchesUpdated", collections)
}

// Serve runs the socket.io event loop until Close.
func (s *Server) Serve() error {
	return s.io.Serve()
}

func (s *Server) Close() error {
	return s.io.Close()
}

// Handler mounts at /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.io
}
