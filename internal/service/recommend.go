package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/metrics"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/sirupsen/logrus"
)

// Visitor 请求方身份：匿名访客靠 cookie 中的 visitor id 区分
type Visitor struct {
	ID            string
	Authenticated bool
}

// Usage 免费推荐额度使用情况
type Usage struct {
	Authenticated bool   `json:"authenticated"`
	Used          int    `json:"used"`
	Limit         int    `json:"limit"`
	Remaining     int    `json:"remaining"`
	SignupURL     string `json:"signup_url,omitempty"`
}

// ValidationError 缺失字段列表
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRecommendRequest.Error(), strings.Join(e.Fields, ","))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRecommendRequest }

// ValidateRecommendRequest 四个字段均必填，interests 至少一个非空项
func ValidateRecommendRequest(req *model.RecommendRequest) error {
	var missing []string
	hasInterest := false
	for _, it := range req.Interests {
		if strings.TrimSpace(it) != "" {
			hasInterest = true
			break
		}
	}
	if !hasInterest {
		missing = append(missing, "interests")
	}
	if strings.TrimSpace(req.Budget) == "" {
		missing = append(missing, "budget")
	}
	if strings.TrimSpace(req.Duration) == "" {
		missing = append(missing, "duration")
	}
	if strings.TrimSpace(req.Area) == "" {
		missing = append(missing, "area")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

type RecommendService struct {
	client interfaces.RecommendClient
	store  *storage.Store
	cfg    *config.RecommendConfig
	logger *logrus.Logger
}

func NewRecommendService(client interfaces.RecommendClient, store *storage.Store, cfg *config.RecommendConfig, logger *logrus.Logger) *RecommendService {
	return &RecommendService{
		client: client,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// freeUses 读失败按 0 处理
func (s *RecommendService) freeUses(ctx context.Context, visitor string) int {
	n, err := s.store.FreeUses(ctx, visitor)
	if err != nil {
		s.logger.WithError(err).WithField("visitor", visitor).Warn("读取免费次数失败，按0处理")
		return 0
	}
	return n
}

func (s *RecommendService) usage(v Visitor, used int) *Usage {
	if v.Authenticated {
		return &Usage{Authenticated: true, Used: used, Limit: s.cfg.FreeLimit}
	}
	remaining := s.cfg.FreeLimit - used
	if remaining < 0 {
		remaining = 0
	}
	u := &Usage{Used: used, Limit: s.cfg.FreeLimit, Remaining: remaining}
	if remaining == 0 {
		u.SignupURL = s.cfg.SignupURL
	}
	return u
}

// Usage 当前访客额度
func (s *RecommendService) Usage(ctx context.Context, v Visitor) *Usage {
	if v.Authenticated {
		return s.usage(v, 0)
	}
	return s.usage(v, s.freeUses(ctx, v.ID))
}

// Recommend 校验 → 额度检查（超额不发起上游请求）→ 调用上游 → 成功后计数加一
func (s *RecommendService) Recommend(ctx context.Context, v Visitor, req *model.RecommendRequest) (*model.RecommendResponse, *Usage, error) {
	if err := ValidateRecommendRequest(req); err != nil {
		metrics.RecommendRequests.WithLabelValues("invalid").Inc()
		return nil, nil, err
	}

	used := 0
	if !v.Authenticated {
		used = s.freeUses(ctx, v.ID)
		if used >= s.cfg.FreeLimit {
			metrics.RecommendRequests.WithLabelValues("quota").Inc()
			return nil, s.usage(v, used), ErrFreeLimitReached
		}
	}

	resp, err := s.client.Recommend(ctx, req)
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("upstream_error").Inc()
		s.logger.WithError(err).WithField("visitor", v.ID).Warn("调用推荐上游失败")
		return nil, s.usage(v, used), fmt.Errorf("%w: %w", ErrRecommendUnavailable, err)
	}
	metrics.RecommendRequests.WithLabelValues("ok").Inc()

	if v.Authenticated {
		return resp, s.usage(v, 0), nil
	}
	n, err := s.store.IncrFreeUses(ctx, v.ID)
	if err != nil {
		s.logger.WithError(err).WithField("visitor", v.ID).Warn("免费次数计数失败")
		n = used + 1
	}
	return resp, s.usage(v, n), nil
}
