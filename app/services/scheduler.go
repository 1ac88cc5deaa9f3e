package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Thhaokip/school-management/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:10, shortly after the date rolls over
			if now.Hour() == 0 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [00:10]...")

				// Deactivate academic sessions that ended yesterday
				n, err := database.DeactivateExpiredSessions(db)
				if err != nil {
					log.Printf("Error deactivating expired sessions: %v", err)
				} else if n > 0 {
					log.Printf("Deactivated %d expired academic session(s)", n)
				}
			}
		}
	}()
}
