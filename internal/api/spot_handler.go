package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/auth"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 手动刷新的超时，与请求生命周期无关
const manualRefreshTimeout = 30 * time.Second

// SpotHandler 景点目录接口
type SpotHandler struct {
	spotService *service.SpotService
	cache       *service.SpotCache
	logger      *logrus.Logger
}

func NewSpotHandler(spotService *service.SpotService, cache *service.SpotCache, logger *logrus.Logger) *SpotHandler {
	return &SpotHandler{
		spotService: spotService,
		cache:       cache,
		logger:      logger,
	}
}

// ListSpots 景点列表（聚合 → 搜索 → 门禁）
// GET /api/spots?category=sights&lang=ja&q=temple
func (h *SpotHandler) ListSpots(c *gin.Context) {
	res, err := h.spotService.ListSpots(service.ListQuery{
		Category:      c.Query("category"),
		Lang:          c.Query("lang"),
		Term:          c.Query("q"),
		Authenticated: auth.IsAuthenticated(c),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of food, sights, hotels"})
			return
		}
		h.logger.WithError(err).Error("ListSpots failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetSpot 深链详情，:id 为 slug 或 id
// GET /api/spots/:id?lang=en
func (h *SpotHandler) GetSpot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	view, err := h.spotService.GetSpot(c.Request.Context(), id, c.Query("lang"))
	if err != nil {
		if errors.Is(err, service.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "spot not found"})
			return
		}
		h.logger.WithError(err).WithField("id", id).Error("GetSpot failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// RefreshSpots 手动触发远端刷新（需登录）
// POST /api/spots/refresh
func (h *SpotHandler) RefreshSpots(c *gin.Context) {
	// 客户端断开不应丢弃已拉取的数据
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), manualRefreshTimeout)
	defer cancel()
	if err := h.cache.Refresh(ctx); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed, cached data kept"})
		return
	}
	docs, updatedAt := h.cache.Snapshot()
	c.JSON(http.StatusOK, gin.H{"count": len(docs), "updated_at": updatedAt})
}

// ListCourses 编辑推荐路线
// GET /api/courses?lang=ja
func (h *SpotHandler) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.spotService.Courses(c.Query("lang"))})
}
