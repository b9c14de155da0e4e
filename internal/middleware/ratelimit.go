package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// IPRateLimiter keeps a token bucket per client IP. It protects the
// unauthenticated register/login endpoints from credential stuffing.
type IPRateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	perMin   float64
	burst    int
	maxIdle  time.Duration
	lastSwep time.Time
}

// NewIPRateLimiter creates a limiter allowing perMinute requests per
// client IP with the given burst size.
func NewIPRateLimiter(perMinute float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		clients:  make(map[string]*clientLimiter),
		perMin:   perMinute,
		burst:    burst,
		maxIdle:  5 * time.Minute,
		lastSwep: time.Now(),
	}
}

func (rl *IPRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Opportunistic cleanup of idle entries instead of a background
	// goroutine; the handlers are the only callers.
	if now.Sub(rl.lastSwep) > rl.maxIdle {
		for ip, cl := range rl.clients {
			if now.Sub(cl.lastAccess) > rl.maxIdle {
				delete(rl.clients, ip)
			}
		}
		rl.lastSwep = now
	}

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.perMin/60.0), rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastAccess = now

	return cl.limiter.Allow()
}

// Middleware rejects requests over the limit with 429.
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !rl.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		ctx.Next()
	}
}
