package jobs

import (
	"context"
	"fmt"

	"chatbox/services"
	"chatbox/services/logger"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the periodic sweep of expired sessions and starts
// the scheduler.
func InitCronJobs(c *cron.Cron, sessions services.SessionStore, log logger.Logger) error {
	_, err := c.AddFunc("@every 15m", func() {
		if removed := sessions.Sweep(context.Background()); removed > 0 {
			log.Info("session sweep removed %d expired sessions", removed)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register session sweep: %w", err)
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
