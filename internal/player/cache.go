package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// registrationCache remembers which identities were registered recently and
// under which display name, so repeated touches skip the write transaction.
type registrationCache struct {
	lru *expirable.LRU[string, string]
}

func newRegistrationCache(size int, ttl time.Duration) *registrationCache {
	return &registrationCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Seen reports whether playerID was registered with displayName within the TTL.
func (c *registrationCache) Seen(playerID, displayName string) bool {
	name, ok := c.lru.Get(playerID)
	return ok && name == displayName
}

// Set records a successful registration.
func (c *registrationCache) Set(playerID, displayName string) {
	c.lru.Add(playerID, displayName)
}

// Len reports the number of cached identities.
func (c *registrationCache) Len() int {
	return c.lru.Len()
}
