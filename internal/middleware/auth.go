package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
)

const (
	ContextUserID = "userID"
	ContextTier   = "tier"
)

// RequireAuth rejects requests without a valid bearer token. Only the
// account endpoints use it; everything else is readable as a guest.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas o usuario no existe"})
			return
		}
		setSession(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the viewer tier without ever rejecting. A
// missing, malformed or expired token just means the request is served
// at the guest tier.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.Set(ContextTier, auth.ResolveTier(false))
			c.Next()
			return
		}
		setSession(c, claims)
		c.Next()
	}
}

// TierFrom reads the tier the auth middleware resolved. Handlers on
// routes without OptionalAuth get the guest tier.
func TierFrom(c *gin.Context) auth.Tier {
	if v, ok := c.Get(ContextTier); ok {
		if tier, ok := v.(auth.Tier); ok {
			return tier
		}
	}
	return auth.TierGuest
}

// UserIDFrom returns the authenticated user's id, empty for guests.
func UserIDFrom(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func parseBearer(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setSession(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextTier, auth.ResolveTier(true))
	ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
	c.Request = c.Request.WithContext(ctx)
}
