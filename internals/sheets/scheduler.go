// internals/sheets/scheduler.go
package sheets

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartResyncScheduler rebuilds the sheets from the database every few hours
// so a failed background push never stays missing for long.
func StartResyncScheduler(syncer *Syncer) *cron.Cron {
	if !syncer.Enabled() {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc("@every 6h", func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncer.timeout*4)
		defer cancel()
		if err := syncer.ResyncAll(ctx); err != nil {
			log.Printf("⚠️ Scheduled sheet resync failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("⚠️ Could not schedule sheet resync: %v", err)
		return nil
	}
	c.Start()
	log.Println("✅ Sheet resync scheduler started (every 6h)")
	return c
}
