package utils

import (
	"log"
	"time"

	"coursehub/cache"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CACHE-JANITOR %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredCacheEntries drops cache entries past their TTL so the tag
// index doesn't grow without bound between invalidations
func purgeExpiredCacheEntries() {
	purged := cache.PurgeExpired()
	if purged > 0 {
		logScheduler("Purged expired cache entries")
	}
}

// InitializeCacheJanitor starts the periodic cache sweep
func InitializeCacheJanitor() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 1m", purgeExpiredCacheEntries); err != nil {
		log.Printf("Failed to schedule cache janitor: %v", err)
		return c
	}

	c.Start()
	logScheduler("Cache janitor started")
	return c
}
