package api

import (
	"net/http"
	"regexp"

	"github.com/Takanoj0616/trip-app-sub000/internal/metrics"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 事件名限制字符集与长度
var eventNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,47}$`)

type MarketingHandler struct {
	ctaService *service.CtaService
	logger     *logrus.Logger
}

func NewMarketingHandler(ctaService *service.CtaService, logger *logrus.Logger) *MarketingHandler {
	return &MarketingHandler{ctaService: ctaService, logger: logger}
}

// CtaVariant 首页 CTA 分桶（同一访客固定）
// GET /api/cta-variant
func (h *MarketingHandler) CtaVariant(c *gin.Context) {
	v := visitorFrom(c)
	c.JSON(http.StatusOK, gin.H{"variant": h.ctaService.Variant(c.Request.Context(), v.ID)})
}

type trackEventRequest struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
}

// TrackEvent 前端埋点
// POST /api/events
func (h *MarketingHandler) TrackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !eventNamePattern.MatchString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event name"})
		return
	}
	variant := req.Variant
	if variant == "" {
		variant = "none"
	} else if !service.IsVariant(variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "variant must be A or B"})
		return
	}

	label := service.EventLabel(req.Name)
	metrics.MarketingEvents.WithLabelValues(label, variant).Inc()
	h.logger.WithFields(logrus.Fields{
		"event":   req.Name,
		"label":   label,
		"variant": variant,
		"visitor": visitorFrom(c).ID,
	}).Debug("收到埋点事件")
	c.Status(http.StatusAccepted)
}
