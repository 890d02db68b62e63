package api

import (
	"net/http"

	"github.com/Takanoj0616/trip-app-sub000/internal/auth"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie    = "visitor_id"
	ctxVisitorKey    = "visitor_id"
	visitorCookieAge = 365 * 24 * 3600
)

// VisitorMiddleware 保证每个请求都有访客ID：cookie 缺失或非法时签发新的 uuid
func VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorCookieAge, "/", "", c.Request.TLS != nil, true)
		}
		c.Set(ctxVisitorKey, id)
		c.Next()
	}
}

// visitorFrom 访客身份：已登录用户以 user id 计，匿名访客以 cookie 计
func visitorFrom(c *gin.Context) service.Visitor {
	if claims := auth.GetClaims(c); claims != nil {
		return service.Visitor{ID: "user:" + claims.UserID, Authenticated: true}
	}
	return service.Visitor{ID: c.GetString(ctxVisitorKey)}
}
