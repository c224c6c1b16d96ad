package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/echoplay-backend/internal/metrics"
)

// idleClientTTL is how long an untouched client limiter survives cleanup.
const idleClientTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP and limit.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[clientKey]*client
	stop    chan struct{}
	once    sync.Once
}

type clientKey struct {
	ip        string
	perMinute int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a background sweep of idle clients every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[clientKey]*client),
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client IP, with bursts up to the
// same number. Rejected requests get 429 and a Retry-After in seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := rl.limiter(clientIP(r), maxPerMinute).Reserve()
			if delay := res.Delay(); !res.OK() || delay > 0 {
				res.Cancel()
				metrics.RateLimitedTotal.WithLabelValues(r.URL.Path).Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))+1))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr so that one client shares a
// bucket across connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) limiter(ip string, perMinute int) *rate.Limiter {
	key := clientKey{ip: ip, perMinute: perMinute}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		every := rate.Every(time.Minute / time.Duration(max(perMinute, 1)))
		c = &client{limiter: rate.NewLimiter(every, max(perMinute, 1))}
		rl.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, c := range rl.clients {
				if now.Sub(c.lastSeen) > idleClientTTL {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
