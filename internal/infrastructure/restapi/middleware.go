package restapi

import (
	"net/http"
	"time"

	"wallet_inspector/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ZapLogger returns a gin middleware that logs every request through zap.
func ZapLogger(logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("RestAPI")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("path", path),
			zap.String("raw", raw),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("incoming request", fields...)
			return
		}
		logger.Debug("incoming request", fields...)
	}
}

// ClientRateLimiter keeps one token bucket per client IP. Buckets of clients that stay
// idle longer than the TTL are evicted.
type ClientRateLimiter struct {
	clients *cache.Cache
	limit   rate.Limit
	burst   int
}

// NewClientRateLimiter creates a limiter allowing requestsPerSecond with the given burst per client.
func NewClientRateLimiter(requestsPerSecond float64, burst int, ttl time.Duration) *ClientRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientRateLimiter{
		clients: cache.New(ttl, ttl*2),
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
	}
}

// Allow reports whether a request from clientIP may proceed now.
func (l *ClientRateLimiter) Allow(clientIP string) bool {
	return l.limiterFor(clientIP).Allow()
}

func (l *ClientRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	if v, found := l.clients.Get(clientIP); found {
		limiter := v.(*rate.Limiter)
		l.clients.SetDefault(clientIP, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.clients.Add(clientIP, limiter, cache.DefaultExpiration); err != nil {
		// another request registered the client first
		if v, found := l.clients.Get(clientIP); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Middleware rejects requests over the client's budget with 429.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RateLimitedRequests.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
