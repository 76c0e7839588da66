package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "parkwise/database/repository/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// authCacheTTL bounds how long a verified token hash skips the DB lookup.
const authCacheTTL = 5 * time.Minute

// JWTAuthUserMiddleware guards the booking endpoints. A request must present
// a valid bearer token whose hash matches a stored user session. Verified
// hashes are cached briefly in Redis so hot clients do not hit Mongo on
// every call.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		if authCache != nil {
			if userID, err := authCache.Get(c.Request.Context(), cacheKey).Result(); err == nil && userID != "" {
				c.Set("userID", userID)
				c.Next()
				return
			}
		}

		// Query the database using the token hash.
		u, err := repo.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		if authCache != nil {
			authCache.Set(c.Request.Context(), cacheKey, u.ID, authCacheTTL)
		}

		c.Set("userID", u.ID)
		c.Next()
	}
}
