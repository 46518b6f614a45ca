// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/storefront"
	"github.com/your-org/shopmart/internal/pkg/auth"
)

const (
	sessionContextKey = "session"

	// SessionTokenHeader carries the session token to clients without
	// cookies. It is set when a session starts or a Bearer token was sent.
	SessionTokenHeader = "X-Session-Token"
)

// SessionMiddleware resolves the visitor's session from the signed cookie or
// a Bearer token, starting a new session when neither is valid
func SessionMiddleware(cfg *config.Config, registry *storefront.Registry, manager *auth.SessionManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		bearer := token != ""
		if !bearer {
			token, _ = c.Cookie(cfg.Session.CookieName)
		}

		var sessionID string
		if token != "" {
			id, err := manager.Parse(token)
			if err != nil {
				logger.WithError(err).WithField("request_id", c.GetString("request_id")).Debug("Discarding session token")
			} else {
				sessionID = id
			}
		}

		session, created := registry.Resolve(sessionID)
		if created {
			issued, err := manager.Issue(session.ID())
			if err != nil {
				logger.WithError(err).Error("Failed to issue session token")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to start session",
				})
				c.Abort()
				return
			}
			token = issued
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.Session.CookieName, token, int(manager.TTL().Seconds()), "/", "", cfg.Session.Secure, true)
		}

		if created || bearer {
			c.Header(SessionTokenHeader, token)
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// GetSession returns the session resolved by SessionMiddleware
func GetSession(c *gin.Context) *storefront.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(*storefront.Session); ok {
			return s
		}
	}
	return nil
}
