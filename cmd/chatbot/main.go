package main

import (
	"log"

	"github.com/gin-gonic/gin"

	chatbot "github.com/Haliukaaa/chatbot-beautysecrets"
	"github.com/Haliukaaa/chatbot-beautysecrets/assistant"
	"github.com/Haliukaaa/chatbot-beautysecrets/catalog"
	"github.com/Haliukaaa/chatbot-beautysecrets/sessions"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

func main() {
	cfg := chatbot.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	var store stores.ConversationStore
	if cfg.Store != nil {
		var err error
		store, err = stores.NewStore(cfg.Store)
		if err != nil {
			log.Fatalf("Failed to open transcript store: %v", err)
		}
		defer store.Close()
	}

	client := assistant.NewClient(cfg.OpenAIAPIKey, cfg.AssistantID)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL)

	chat := sessions.NewChatSession(client, catalog.Executors(catalogClient), store)
	chat.Instructions = cfg.Instructions
	chat.Poller.Interval = cfg.PollInterval
	chat.Poller.MaxAttempts = cfg.PollMaxAttempts

	if store != nil {
		retention, err := chatbot.StartRetention(store, cfg.RetentionSchedule, cfg.RetentionMaxAge, log.Default())
		if err != nil {
			log.Fatalf("Failed to start retention job: %v", err)
		}
		defer retention.Stop()
	}

	server := chatbot.NewServer(cfg, chat, store)
	router := gin.Default()
	server.RegisterRoutes(router)

	log.Printf("Listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
