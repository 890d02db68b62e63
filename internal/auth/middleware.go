package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const CtxClaimsKey = "auth_claims"

func bearer(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if len(h) < len("Bearer ") || !strings.EqualFold(h[:len("Bearer ")], "bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(h[len("Bearer "):])
	return raw, raw != ""
}

// OptionalAuth 有合法令牌则写入 claims；无令牌或令牌无效都按匿名访客继续
func OptionalAuth(tokens TokenService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearer(c); ok {
			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.WithError(err).Debug("令牌无效，按匿名访客处理")
			} else {
				c.Set(CtxClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireAuth 必须已通过 OptionalAuth 写入 claims
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetClaims(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "需要登录"})
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

func IsAuthenticated(c *gin.Context) bool {
	return GetClaims(c) != nil
}
