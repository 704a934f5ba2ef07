// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "kampusku_backend/internals/features/users/auth/repository"
)

// StartSessionCleanupScheduler sweeps expired refresh-token and
// password-reset rows. Expiry is enforced lazily at use time; the sweep is
// hygiene, not correctness.
func StartSessionCleanupScheduler(db *gorm.DB) {
	sessions := authRepo.NewSessionRepository(db)
	resets := authRepo.NewResetRepository(db)

	go func() {
		for {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			now := time.Now().UTC()

			if n, err := sessions.DeleteExpired(ctx, now); err != nil {
				log.Printf("[CLEANUP ERROR] expired refresh tokens: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] removed %d expired refresh tokens", n)
			}

			if n, err := resets.DeleteExpired(ctx, now); err != nil {
				log.Printf("[CLEANUP ERROR] expired reset tokens: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] removed %d expired reset tokens", n)
			}

			cancel()
			time.Sleep(12 * time.Hour)
		}
	}()
}
