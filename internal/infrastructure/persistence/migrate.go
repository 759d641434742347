package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/community"
	"github.com/residence/backend/internal/domain/finance"
	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/incident"
	"github.com/residence/backend/internal/domain/residence"
)

// Migrate creates or updates the full schema.
func Migrate(db *gorm.DB) error {
	models := []any{
		&residence.Residence{},
		&residence.Settings{},
		&housing.House{},
		&housing.Resident{},
		&identity.User{},
		&finance.Payment{},
		&finance.Expense{},
		&finance.ExpenseImage{},
		&incident.Incident{},
		&incident.Comment{},
		&community.Post{},
		&community.Like{},
		&community.Comment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// One live like per (post, user). The partial index lets a re-like
	// succeed after an unlike without colliding with the dead row.
	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_post_likes_live
		ON post_likes (post_id, user_id) WHERE is_deleted = false`).Error
	if err != nil {
		return fmt.Errorf("failed to create like uniqueness index: %w", err)
	}

	return nil
}
