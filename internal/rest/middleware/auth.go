package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

// UserIDKey is the gin context key holding the authenticated caller's id.
const UserIDKey = "user_id"

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token and stores the caller id under UserIDKey.
// Requests without a valid token are aborted with 401.
func AuthMiddleware(resolver domain.TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			abortUnauthorized(c)
			return
		}

		uid, err := resolver.ResolveUserID(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				logrus.Errorf("resolve token failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": domain.ErrInternalServerError.Error()})
				return
			}
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, uid)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrUnauthorized.Error()})
}
