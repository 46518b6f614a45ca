// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/your-org/shopmart/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(cfg.Security.CORSAllowedOrigins) == 1 && cfg.Security.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Security.CORSAllowedOrigins
		corsConfig.AllowWildcard = true
		// Cookies only travel to explicitly allowed origins.
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = cfg.Security.CORSAllowedMethods
	corsConfig.AllowHeaders = cfg.Security.CORSAllowedHeaders
	corsConfig.AddAllowHeaders("Authorization", RequestIDHeader)
	corsConfig.AddExposeHeaders(RequestIDHeader, SessionTokenHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining")
	corsConfig.MaxAge = 24 * time.Hour

	return cors.New(corsConfig)
}
