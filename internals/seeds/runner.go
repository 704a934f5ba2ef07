package seeds

import (
	"gorm.io/gorm"

	authService "kampusku_backend/internals/features/users/auth/service"
	"kampusku_backend/internals/seeds/academics"
	"kampusku_backend/internals/seeds/users"
)

// RunAllSeeds loads bootstrap data. Every seeder skips rows that already
// exist, so this can run on every deploy.
func RunAllSeeds(db *gorm.DB) {
	hasher := authService.BcryptHasher{}

	users.SeedUsersFromJSON(db, hasher, "internals/seeds/users/data_users.json")
	academics.SeedSubjectsFromJSON(db, "internals/seeds/academics/data_subjects.json")
}
