package api

import (
	"errors"
	"net/http"

	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RecommendHandler AI推荐接口
type RecommendHandler struct {
	recommendService *service.RecommendService
	logger           *logrus.Logger
}

func NewRecommendHandler(recommendService *service.RecommendService, logger *logrus.Logger) *RecommendHandler {
	return &RecommendHandler{recommendService: recommendService, logger: logger}
}

// Recommend 校验表单、检查免费额度后转发上游
// POST /api/ai-recommendations
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, usage, err := h.recommendService.Recommend(c.Request.Context(), visitorFrom(c), &req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": ve.Fields})
		case errors.Is(err, service.ErrFreeLimitReached):
			c.JSON(http.StatusForbidden, gin.H{
				"error":      "free recommendation limit reached, please create an account",
				"signup_url": usage.SignupURL,
				"usage":      usage,
			})
		case errors.Is(err, service.ErrRecommendUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get recommendations, please try again"})
		default:
			h.logger.WithError(err).Error("Recommend failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": resp.Recommendations,
		"reasoning":       resp.Reasoning,
		"totalTime":       resp.TotalTime,
		"usage":           usage,
	})
}

// Usage 当前访客免费额度
// GET /api/ai-recommendations/usage
func (h *RecommendHandler) Usage(c *gin.Context) {
	c.JSON(http.StatusOK, h.recommendService.Usage(c.Request.Context(), visitorFrom(c)))
}
