package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/counterline/voice-core/core/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWebsocket runs one full session over the connection: binary
// frames in are audio, text frames out are wire-encoded events. The
// session drains completely before the socket closes, so events already
// in flight still reach the client after the caller stops sending.
func (s *Server) handleWebsocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()
	session, err := s.newSession(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create session", slog.Any("error", err))
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session setup failed"))
		return nil
	}
	logger.InfoContext(ctx, "Session started", slog.String("session_id", session.ID))

	runDone := make(chan error, 1)
	go func() {
		runDone <- session.Run(ctx)
	}()

	egressDone := make(chan struct{})
	go func() {
		defer close(egressDone)
		for event := range session.Events() {
			payload, err := events.Marshal(event)
			if err != nil {
				logger.WarnContext(ctx, "Failed to encode event",
					slog.String("kind", string(event.Kind())), slog.Any("error", err))
				continue
			}
			// Best effort: a send failure must not stop the drain.
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.DebugContext(ctx, "Failed to write event", slog.Any("error", err))
			}
		}
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		session.PushAudio(payload)
	}

	session.Close()
	if err := <-runDone; err != nil {
		logger.WarnContext(ctx, "Session ended with error",
			slog.String("session_id", session.ID), slog.Any("error", err))
	}
	<-egressDone
	logger.InfoContext(ctx, "Session drained", slog.String("session_id", session.ID))
	return nil
}
