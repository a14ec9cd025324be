package chatbot

import (
	"github.com/Haliukaaa/chatbot-beautysecrets/models"
	"github.com/Haliukaaa/chatbot-beautysecrets/sessions"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

// Re-export session types for convenience
type ChatSession = sessions.ChatSession
type WSSession = sessions.WSSession
type Poller = sessions.Poller
type ToolDispatcher = sessions.ToolDispatcher
type RunFailedError = sessions.RunFailedError

var ErrRunTimeout = sessions.ErrRunTimeout

// Re-export constructor functions
func NewChatSession(client sessions.AssistantClient, executors map[string]models.ToolExecutor, store stores.ConversationStore) *ChatSession {
	return sessions.NewChatSession(client, executors, store)
}
