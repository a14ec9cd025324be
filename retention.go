package chatbot

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

// StartRetention schedules periodic pruning of transcript turns older than
// maxAge. The returned cron should be stopped on shutdown.
func StartRetention(store stores.ConversationStore, schedule string, maxAge time.Duration, logger *log.Logger) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	if maxAge <= 0 {
		maxAge = DefaultRetentionMaxAge
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		cutoff := time.Now().Add(-maxAge)
		deleted, err := store.PruneBefore(cutoff)
		if err != nil {
			logger.Printf("Retention prune failed: %v", err)
			return
		}
		if deleted > 0 {
			logger.Printf("Retention prune removed %d turns older than %s", deleted, cutoff.Format(time.RFC3339))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
