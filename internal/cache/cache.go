package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched listing pages so repeated crawls within the TTL
// do not hit the publication server again.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a stable cache key from a URL. The version segment
// invalidates old entries when the cached format changes.
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "jphstats:v1:" + hex.EncodeToString(hash[:])
}
