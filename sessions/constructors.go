package sessions

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Haliukaaa/chatbot-beautysecrets/models"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

// NewChatSession wires a chat session with its poller and dispatcher around
// one injected assistant client. store may be nil for a stateless service.
func NewChatSession(client AssistantClient, executors map[string]models.ToolExecutor, store stores.ConversationStore) *ChatSession {
	logger := log.New(os.Stdout, "[chat] ", log.LstdFlags)

	dispatcher := &ToolDispatcher{
		Client: client,
		Tools:  executors,
		Logger: logger,
	}
	poller := &Poller{
		Client:      client,
		Dispatcher:  dispatcher,
		Interval:    DefaultPollInterval,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      logger,
	}

	return &ChatSession{
		Client: client,
		Poller: poller,
		Store:  store,
		Locks:  NewThreadLocks(),
		Logger: logger,
	}
}

// NewWSSession creates a websocket session over an accepted connection.
func NewWSSession(conn *websocket.Conn, chat *ChatSession) *WSSession {
	sessionID := uuid.New().String()
	logger := log.New(os.Stdout, fmt.Sprintf("[WS %s] ", sessionID), log.LstdFlags)

	return &WSSession{
		SessionID: sessionID,
		Chat:      chat,
		Writer:    &WSWriter{Conn: conn},
		Logger:    logger,
	}
}
