package cache

import (
	"log"
	"time"

	"coursehub/config"
)

var (
	store  *MemoryStore
	remote *RemoteInvalidator
)

// Init sets up the in-memory tag store and, when CACHE_SERVICE_URL is
// configured, the remote invalidator
func Init() {
	ttl := 15 * time.Minute
	if config.AppConfig != nil && config.AppConfig.CacheTTLMinutes > 0 {
		ttl = time.Duration(config.AppConfig.CacheTTLMinutes) * time.Minute
	}
	store = NewMemoryStore(ttl)

	remote = nil
	if config.AppConfig != nil && config.AppConfig.CacheServiceURL != "" {
		remote = NewRemoteInvalidator(config.AppConfig.CacheServiceURL)
		log.Printf("Remote cache invalidation enabled: %s", config.AppConfig.CacheServiceURL)
	}
}

// Get returns the cached value for key, or false on a miss
func Get(key string) (interface{}, bool) {
	if store == nil {
		return nil, false
	}
	return store.Get(key)
}

// Set stores value under key, indexed by tags
func Set(key string, value interface{}, tags ...string) {
	if store == nil {
		return
	}
	store.Set(key, value, tags...)
}

// Invalidate drops local entries for the tags and forwards them to the
// remote invalidator when one is configured. Safe to call for tags with
// no live entries.
func Invalidate(tags ...string) {
	if store != nil {
		store.Invalidate(tags...)
	}
	if remote != nil {
		remote.Invalidate(tags)
	}
}

// PurgeExpired removes expired entries from the local store
func PurgeExpired() int {
	if store == nil {
		return 0
	}
	return store.PurgeExpired()
}
