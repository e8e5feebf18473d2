package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/glowstudio/landing-builder/internal/config"
)

const (
	// ContextUserID holds the resolved account id for the request.
	ContextUserID = "userID"

	// HeaderUserID is the opaque identity header set by the editor after
	// login. A bearer token issued at login works as well.
	HeaderUserID = "X-User-ID"
)

// IdentityMiddleware resolves the caller's user id from the X-User-ID header
// or from a bearer JWT, and rejects requests carrying neither.
func IdentityMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(HeaderUserID); id != "" {
			c.Set(ContextUserID, id)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_identity"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
