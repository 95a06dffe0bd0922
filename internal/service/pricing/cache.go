package pricing

import (
	"sync"
	"time"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// quoteCache remembers the last resolved quote for a bounded time. It is
// explicit state with an explicit clock so tests can drive expiry without
// sleeping.
type quoteCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	quote models.PriceQuote
	valid bool
}

// get returns the cached quote unless it is absent or expired at now.
func (c *quoteCache) get(now time.Time) (models.PriceQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.expired(now) {
		return models.PriceQuote{}, false
	}
	return c.quote, true
}

// set stores a freshly resolved quote, fallback resolutions included.
func (c *quoteCache) set(q models.PriceQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quote = q
	c.valid = true
}

// expired treats a future FetchedAt as expired: a quote must never outlive
// a clock that moved backwards.
func (c *quoteCache) expired(now time.Time) bool {
	age := now.Sub(c.quote.FetchedAt)
	return age < 0 || age >= c.ttl
}
