package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samuelr2112/portfolio/internal/api/dto/common"
	"github.com/samuelr2112/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxTrackedClients = 4096

// ClientRateLimiter bounds accepted requests per client key within a
// rolling window. A sliding log of accepted timestamps is kept per key:
// a token bucket cannot express the "never more than N in any window"
// invariant the contact route needs.
type ClientRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	idleTTL time.Duration
	now     func() time.Time
}

type clientWindow struct {
	stamps   []time.Time
	lastSeen time.Time
}

func NewClientRateLimiter(limit int, window time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		idleTTL: 15 * time.Minute,
		now:     time.Now,
	}
}

// Allow records and admits the request unless the client already has
// `limit` accepted requests inside the window. Rejected requests are not
// recorded. The second return value is the wait until a slot frees up.
func (l *ClientRateLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	cw, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= maxTrackedClients {
			l.evictIdleLocked(now)
		}
		cw = &clientWindow{}
		l.clients[key] = cw
	}
	cw.lastSeen = now

	// Drop timestamps that have left the window
	keep := cw.stamps[:0]
	for _, ts := range cw.stamps {
		if now.Sub(ts) < l.window {
			keep = append(keep, ts)
		}
	}
	cw.stamps = keep

	if len(cw.stamps) >= l.limit {
		return false, l.window - now.Sub(cw.stamps[0])
	}

	cw.stamps = append(cw.stamps, now)
	return true, 0
}

func (l *ClientRateLimiter) evictIdleLocked(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for key, cw := range l.clients {
		if cw.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// RateLimit rejects over-limit requests before the handler runs
func RateLimit(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := limiter.Allow(utils.GetRealIP(c))
		if !ok {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.",
				nil,
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
