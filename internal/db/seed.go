package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"split-app-go/pkg/logger"
)

const seedLockKey = 7_301_001

const sampleGroupName = "Trip to Goa"

var sampleFriends = []string{"Alice", "Bob", "Charlie"}

// Seed inserts the sample group, its three friends and their memberships,
// but only into an empty database. The advisory lock keeps two instances
// starting at the same time from both seeding.
func Seed(ctx context.Context, gormDB *gorm.DB, log logger.Logger) error {
	return gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockKey).Error; err != nil {
			return fmt.Errorf("seed lock: %w", err)
		}

		var count int64
		if err := tx.Table("groups").Count(&count).Error; err != nil {
			return fmt.Errorf("count groups: %w", err)
		}
		if count > 0 {
			log.Debug("db: seed skipped, groups already present", "count", count)
			return nil
		}

		var groupID int64
		if err := tx.Raw("INSERT INTO groups (name) VALUES (?) RETURNING id", sampleGroupName).Scan(&groupID).Error; err != nil {
			return fmt.Errorf("seed group: %w", err)
		}

		for _, name := range sampleFriends {
			var friendID int64
			if err := tx.Raw("INSERT INTO friends (name, group_id) VALUES (?, ?) RETURNING id", name, groupID).Scan(&friendID).Error; err != nil {
				return fmt.Errorf("seed friend %s: %w", name, err)
			}
			if err := tx.Exec("INSERT INTO groups_members (group_id, friend_id) VALUES (?, ?)", groupID, friendID).Error; err != nil {
				return fmt.Errorf("seed membership %s: %w", name, err)
			}
		}

		log.Info("db: sample data seeded", "group_id", groupID, "friends", len(sampleFriends))
		return nil
	})
}
