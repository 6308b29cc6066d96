package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"nextcare-api/config"
	"nextcare-api/pkg/response"

	"golang.org/x/time/rate"
)

const (
	clientIdleTimeout = 10 * time.Minute
	maxTrackedClients = 10000
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	trustProxy bool
	now        func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// NewRateLimiter returns nil when cfg disables limiting; a nil limiter passes every request.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	if cfg.LoginPerSecond <= 0 || cfg.LoginBurst <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:      rate.Limit(cfg.LoginPerSecond),
		burst:      cfg.LoginBurst,
		trustProxy: cfg.TrustProxy,
		now:        time.Now,
		clients:    make(map[string]*client),
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= clientIdleTimeout {
		l.sweep(now)
	}

	c, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= maxTrackedClients {
			l.sweep(now)
			if len(l.clients) >= maxTrackedClients {
				l.evictOldest()
			}
		}
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops clients idle longer than clientIdleTimeout. Caller holds mu.
func (l *RateLimiter) sweep(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= clientIdleTimeout {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *RateLimiter) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, c := range l.clients {
		if oldestKey == "" || c.lastSeen.Before(oldest) {
			oldestKey, oldest = key, c.lastSeen
		}
	}
	delete(l.clients, oldestKey)
}

func (l *RateLimiter) Handle(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiterFor(clientIP(r, l.trustProxy)).Allow() {
			response.TooManyRequests(w, "Too many login attempts, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP reads X-Forwarded-For only behind a trusted proxy; otherwise the header is client controlled.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
