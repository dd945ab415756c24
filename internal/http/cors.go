package http

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/allisson/certmaker/internal/config"
)

// createCORSMiddleware builds the CORS middleware from config.
// With no configured origins every origin is allowed, which fits the public
// storefront endpoints; lock it down with CORS_ALLOW_ORIGINS in production.
func createCORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if cfg.CORSAllowOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		origins := strings.Split(cfg.CORSAllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
