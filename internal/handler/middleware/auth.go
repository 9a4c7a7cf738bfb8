package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"apprien-go-sdk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const (
	tokenCacheTTL     = 5 * time.Minute
	tokenCacheCleanup = 10 * time.Minute
)

type AuthMiddleware struct {
	jwtService *jwt.Service
	tokenCache *cache.Cache
}

const (
	ctxGameKey  = "game"
	ctxStoreKey = "store"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenCache: cache.New(tokenCacheTTL, tokenCacheCleanup),
	}
}

// validate caches claims until the earlier of the token's expiry and the
// cache TTL.
func (m *AuthMiddleware) validate(token string) (*jwt.Claims, error) {
	if cached, found := m.tokenCache.Get(token); found {
		return cached.(*jwt.Claims), nil
	}

	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	ttl := tokenCacheTTL
	if claims.ExpiresAt != nil {
		ttl = min(ttl, time.Until(claims.ExpiresAt.Time))
	}
	if ttl > 0 {
		m.tokenCache.Set(token, claims, ttl)
	}
	return claims, nil
}

// RequireAuth accepts a bearer token issued for the game and store in the
// path. Tokens with an empty game or store claim are valid for any.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		if !claimMatches(claims.Game, c.Param("pkg")) || !claimMatches(claims.Store, c.Param("store")) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Token not issued for this game"},
			})
			c.Abort()
			return
		}

		c.Set(ctxGameKey, claims.Game)
		c.Set(ctxStoreKey, claims.Store)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func claimMatches(claim, param string) bool {
	return claim == "" || param == "" || claim == param
}

// GetGame returns the game claim of the authenticated token.
func GetGame(c *gin.Context) (string, bool) {
	game, exists := c.Get(ctxGameKey)
	if !exists {
		return "", false
	}
	g, ok := game.(string)
	return g, ok
}

func GetStore(c *gin.Context) (string, bool) {
	store, exists := c.Get(ctxStoreKey)
	if !exists {
		return "", false
	}
	s, ok := store.(string)
	return s, ok
}
