package utils

import (
	"fmt"
	"time"

	"educa/logger"
	"educa/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SweepOrphanItems deletes items no content points at anymore. Items touched within grace are
// kept. It returns how many rows were removed across all kinds.
func SweepOrphanItems(db *gorm.DB, grace time.Duration) (int64, error) {
	cutoff := time.Now().Add(-grace)

	var total int64
	for _, kind := range course.ItemKinds() {
		item, err := course.NewItem(kind)
		if err != nil {
			return total, err
		}
		linked := db.Model(&course.Content{}).Select("item_id").Where("item_type = ?", kind)
		res := db.Where("updated_at < ?", cutoff).
			Where("id NOT IN (?)", linked).
			Delete(item)
		if res.Error != nil {
			return total, fmt.Errorf("sweep %s items: %w", kind, res.Error)
		}
		total += res.RowsAffected
	}
	return total, nil
}

// StartItemSweeper runs SweepOrphanItems on schedule until the returned cron is stopped
func StartItemSweeper(db *gorm.DB, schedule string, grace time.Duration) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		removed, err := SweepOrphanItems(db, grace)
		if err != nil {
			logger.Log.Error("orphan item sweep failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Log.Info("orphan items removed", "count", removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.Log.Info("orphan item sweeper started", "schedule", schedule, "grace", grace)
	return c, nil
}
