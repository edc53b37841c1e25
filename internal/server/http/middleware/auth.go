package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/ovenside/storefront/internal/pkg/auth"
)

const (
	// MerchantIDContextKey is a gin context key for the authenticated merchant identifier.
	MerchantIDContextKey = "merchantID"
	authCookieName       = "storefront_token"
)

// TokenParser validates a session token and returns the merchant it belongs to.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures a merchant is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		merchantID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(MerchantIDContextKey, merchantID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes session token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
