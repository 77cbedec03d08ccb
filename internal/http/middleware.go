package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service"
)

const (
	sessionHeader = "X-Session-ID"
	sessionIDKey  = "session_id"
	sessionKey    = "session"
)

// withSession resolves X-Session-ID to the session's Storefront.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session header missing"})
			return
		}
		sf, err := s.sessions.Get(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(mapErrorToStatus(err), gin.H{"error": "session " + err.Error()})
			return
		}
		c.Set(sessionIDKey, id)
		c.Set(sessionKey, sf)
		c.Next()
	}
}

// requireAdmin gates admin navigation on the session user's role.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func session(c *gin.Context) *service.Storefront {
	return c.MustGet(sessionKey).(*service.Storefront)
}
