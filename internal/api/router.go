package api

import (
	"net/http"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/auth"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Services 路由依赖
type Services struct {
	Spots     *service.SpotService
	Cache     *service.SpotCache
	Recommend *service.RecommendService
	Cta       *service.CtaService
	Tokens    auth.TokenService
	Logger    *logrus.Logger
	// EnablePprof 注册 /debug/pprof
	EnablePprof bool
}

// NewRouter 注册全部路由
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.Logger), gin.Recovery())

	if s.EnablePprof {
		pprof.Register(r)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	spotHandler := NewSpotHandler(s.Spots, s.Cache, s.Logger)
	recommendHandler := NewRecommendHandler(s.Recommend, s.Logger)
	marketingHandler := NewMarketingHandler(s.Cta, s.Logger)

	apiGroup := r.Group("/api", VisitorMiddleware(), auth.OptionalAuth(s.Tokens, s.Logger))
	apiGroup.GET("/spots", spotHandler.ListSpots)
	apiGroup.POST("/spots/refresh", auth.RequireAuth(), spotHandler.RefreshSpots)
	apiGroup.GET("/spots/:id", spotHandler.GetSpot)
	apiGroup.GET("/courses", spotHandler.ListCourses)

	apiGroup.POST("/ai-recommendations", recommendHandler.Recommend)
	apiGroup.GET("/ai-recommendations/usage", recommendHandler.Usage)

	apiGroup.GET("/cta-variant", marketingHandler.CtaVariant)
	apiGroup.POST("/events", marketingHandler.TrackEvent)
	return r
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("HTTP请求")
	}
}
