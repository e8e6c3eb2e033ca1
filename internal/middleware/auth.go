package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/domain"
	"cabadmin/internal/service"
)

const sessionKey = "session"

// Authenticator resolves a session token to a signed-in session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// SessionAuth returns middleware that requires a valid bearer session token.
// The resolved session is stored in the gin context.
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			return
		}

		sess, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abort(c, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireSection returns middleware that rejects roles that may not use section.
func RequireSection(section service.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || !service.CanAccess(sess.Role, section) {
			abort(c, http.StatusForbidden, "access to "+string(section)+" is not permitted")
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session stored by SessionAuth, or nil.
func SessionFrom(c *gin.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}

func abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"code": code, "message": message})
}
