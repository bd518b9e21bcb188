package middleware

import (
	"strings"

	"resto-go-pos/pkg/jwt"
	"resto-go-pos/pkg/response"
	"resto-go-pos/redis"

	"github.com/gin-gonic/gin"
)

// Jwt checks the Authorization header, rejects blacklisted tokens and puts
// the caller identity on the context.
func Jwt(mgr *jwt.Manager, tokens *redis.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			response.Abort(c, response.AUTH_ERROR, "request is missing a token")
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		if tokens != nil && tokens.IsRevoked(c.Request.Context(), token) {
			response.Abort(c, response.AUTH_ERROR, "token has been revoked")
			return
		}

		claims, err := mgr.ParseToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Abort(c, response.AUTH_ERROR, "authorization has expired")
				return
			}
			response.Abort(c, response.AUTH_ERROR, err.Error())
			return
		}

		c.Set("uid", claims.UID)
		c.Set("rid", claims.RID)
		c.Set("type", claims.TYPE)
		c.Set("token", token)
		c.Next()
	}
}
