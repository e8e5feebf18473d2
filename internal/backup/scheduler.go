// Package backup snapshots the file-backed store on a cron schedule.
package backup

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/glowstudio/landing-builder/internal/store"
)

// Start schedules periodic snapshots of snap into dir. Returns nil when no
// schedule is configured or the backend cannot snapshot.
func Start(schedule, dir string, snap store.Snapshotter) *cron.Cron {
	if schedule == "" || snap == nil {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := snap.Snapshot(dir); err != nil {
			log.Printf("backup snapshot failed: %v", err)
			return
		}
		log.Printf("backup snapshot written to %s", dir)
	}); err != nil {
		log.Printf("invalid backup schedule %q: %v", schedule, err)
		return nil
	}

	c.Start()
	log.Println("Backup scheduler started")
	return c
}
