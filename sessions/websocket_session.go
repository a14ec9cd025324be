package sessions

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Haliukaaa/chatbot-beautysecrets/models"
)

// DefaultTurnTimeout bounds one websocket conversation turn end to end.
const DefaultTurnTimeout = 60 * time.Second

// WSWriter guards concurrent writes to one websocket connection.
type WSWriter struct {
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (w *WSWriter) WriteResponse(resp interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(resp)
}

func (w *WSWriter) WriteError(message, code string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(models.Error_Response{Error: message, Code: code})
}

// WSSession is the websocket chat surface. Each inbound frame is one
// conversation turn running through the same ChatSession as POST /chat.
type WSSession struct {
	SessionID   string
	Chat        *ChatSession
	Writer      *WSWriter
	TurnTimeout time.Duration
	Logger      *log.Logger
}

// Run reads frames until the connection closes.
func (s *WSSession) Run(ctx context.Context) {
	defer s.Writer.Conn.Close()

	for {
		var frame models.WS_Chat_Frame
		if err := s.Writer.Conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.Logger.Printf("Read error: %v", err)
			}
			return
		}

		if frame.Message == "" {
			if err := s.Writer.WriteError("Message is required", models.CodeBadRequest); err != nil {
				return
			}
			continue
		}

		timeout := s.TurnTimeout
		if timeout <= 0 {
			timeout = DefaultTurnTimeout
		}
		turnCtx, cancel := context.WithTimeout(ctx, timeout)
		reply, threadID, err := s.Chat.RunChatInteraction(turnCtx, frame.Message, frame.ThreadID)
		cancel()

		if err != nil {
			s.Logger.Printf("Interaction error: %v", err)
			if writeErr := s.Writer.WriteError("Internal Server Error", ErrorCode(err)); writeErr != nil {
				return
			}
			continue
		}

		if err := s.Writer.WriteResponse(models.Chat_Response{Message: reply, ThreadID: threadID}); err != nil {
			s.Logger.Printf("Write error: %v", err)
			return
		}
	}
}
