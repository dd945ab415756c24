package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/allisson/certmaker/internal/config"
	"github.com/allisson/certmaker/internal/httputil"
)

// CustomLoggerMiddleware returns a gin middleware that logs requests with slog.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// BearerAuthMiddleware requires the static API token on protected routes.
// An empty configured token disables the check, for local development.
func BearerAuthMiddleware(token string, logger *slog.Logger) gin.HandlerFunc {
	const prefix = "Bearer "

	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			unauthorized(c, logger)
			return
		}

		provided := header[len(prefix):]
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			unauthorized(c, logger)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context, logger *slog.Logger) {
	logger.Warn("rejected request without a valid bearer token",
		slog.String("path", c.Request.URL.Path),
		slog.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.ErrorResponse{
		Error:   "unauthorized",
		Message: "Authentication is required",
	})
}

// clientLimiters tracks one token bucket per client IP.
type clientLimiters struct {
	limiters sync.Map // client ip -> *rate.Limiter
	rps      rate.Limit
	burst    int
}

func (s *clientLimiters) get(clientIP string) *rate.Limiter {
	if limiter, ok := s.limiters.Load(clientIP); ok {
		return limiter.(*rate.Limiter)
	}

	limiter, _ := s.limiters.LoadOrStore(clientIP, rate.NewLimiter(s.rps, s.burst))
	return limiter.(*rate.Limiter)
}

// RateLimitMiddleware limits requests per client IP using a token bucket.
func RateLimitMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	store := &clientLimiters{
		rps:   rate.Limit(cfg.RateLimitRequestsPerSec),
		burst: cfg.RateLimitBurst,
	}

	return func(c *gin.Context) {
		if !store.get(c.ClientIP()).Allow() {
			logger.Warn("rate limit exceeded", slog.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
