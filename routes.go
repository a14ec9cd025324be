package chatbot

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Haliukaaa/chatbot-beautysecrets/models"
	"github.com/Haliukaaa/chatbot-beautysecrets/sessions"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

// Server holds the handler dependencies: one configured chat session shared
// across requests and an optional transcript store.
type Server struct {
	Config   *Config
	Chat     *sessions.ChatSession
	Store    stores.ConversationStore
	Logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewServer(cfg *Config, chat *sessions.ChatSession, store stores.ConversationStore) *Server {
	return &Server{
		Config: cfg,
		Chat:   chat,
		Store:  store,
		Logger: log.New(os.Stdout, "[server] ", log.LstdFlags),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes wires all HTTP surfaces onto the router.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.POST("/chat", s.ChatHandler)
	router.GET("/chat/history/:threadID", s.HistoryHandler)
	router.GET("/ws", s.WSHandler)
	router.GET("/health", s.HealthHandler)
}

// ChatHandler runs one conversation turn. Clients get generic error messages
// with a machine code; failure detail stays in the server log.
func (s *Server) ChatHandler(c *gin.Context) {
	var req models.Chat_Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Error_Response{Error: "Invalid request body", Code: models.CodeBadRequest})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, models.Error_Response{Error: "Message is required", Code: models.CodeBadRequest})
		return
	}

	// Configuration is checked before any remote call.
	if err := s.Config.Validate(); err != nil {
		s.Logger.Printf("Configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, models.Error_Response{
			Error: "Assistant service is not configured", Code: models.CodeConfig,
		})
		return
	}

	timeout := s.Config.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	reply, threadID, err := s.Chat.RunChatInteraction(ctx, req.Message, req.ThreadID)
	if err != nil {
		s.Logger.Printf("Chat interaction failed (thread %q): %v", req.ThreadID, err)
		c.JSON(http.StatusInternalServerError, models.Error_Response{
			Error: "Internal Server Error", Code: sessions.ErrorCode(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.Chat_Response{Message: reply, ThreadID: threadID})
}

// HistoryHandler returns the locally recorded transcript for a thread.
func (s *Server) HistoryHandler(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, models.Error_Response{
			Error: "History storage is not configured", Code: models.CodeConfig,
		})
		return
	}

	threadID := c.Param("threadID")
	turns, err := s.Store.FetchTranscript(threadID, 0)
	if err != nil {
		s.Logger.Printf("Failed to fetch transcript for %s: %v", threadID, err)
		c.JSON(http.StatusInternalServerError, models.Error_Response{
			Error: "Internal Server Error", Code: models.CodeRemoteFailure,
		})
		return
	}

	history := make([]models.TranscriptMessageResponse, 0, len(turns))
	for _, turn := range turns {
		history = append(history, models.TranscriptMessageResponse{
			ID:        turn.ID,
			CreatedAt: turn.CreatedAt,
			ThreadID:  turn.ThreadID,
			Sequence:  turn.Sequence,
			Role:      turn.Role,
			Text:      turn.Text,
		})
	}

	c.JSON(http.StatusOK, gin.H{"threadId": threadID, "messages": history})
}

// WSHandler upgrades to the websocket chat surface.
func (s *Server) WSHandler(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	session := sessions.NewWSSession(conn, s.Chat)
	session.Run(c.Request.Context())
}

// HealthHandler reports service and store health.
func (s *Server) HealthHandler(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if s.Store != nil {
		if err := s.Store.Ping(); err != nil {
			status["database"] = "unavailable"
		} else {
			status["database"] = "ok"
		}
	}
	c.JSON(http.StatusOK, status)
}
