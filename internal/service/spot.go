package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/i18n"
	"github.com/Takanoj0616/trip-app-sub000/internal/metrics"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/repository"

	"github.com/sirupsen/logrus"
)

// ListQuery 列表查询参数
type ListQuery struct {
	Category      string
	Lang          string
	Term          string
	Authenticated bool
}

// ListResult 列表结果，回显最终生效的 category/lang 供前端写回 URL
type ListResult struct {
	Category  model.Category `json:"category"`
	Lang      string         `json:"lang"`
	Query     string         `json:"q"`
	Total     int            `json:"total"`
	FreeQuota int            `json:"free_quota"`
	Locked    int            `json:"locked"`
	Cards     []Card         `json:"cards"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

type SpotService struct {
	cache      *SpotCache
	aggregator *Aggregator
	repo       repository.SpotRepository
	cfg        *config.SpotsConfig
	logger     *logrus.Logger
}

func NewSpotService(cache *SpotCache, aggregator *Aggregator, repo repository.SpotRepository, cfg *config.SpotsConfig, logger *logrus.Logger) *SpotService {
	return &SpotService{
		cache:      cache,
		aggregator: aggregator,
		repo:       repo,
		cfg:        cfg,
		logger:     logger,
	}
}

// resolveCategory 空值默认 sights
func resolveCategory(s string) (model.Category, error) {
	if s == "" {
		return model.CategorySights, nil
	}
	c, ok := model.ParseCategory(s)
	if !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ListSpots 聚合 → 过滤 → 门禁
func (s *SpotService) ListSpots(q ListQuery) (*ListResult, error) {
	category, err := resolveCategory(q.Category)
	if err != nil {
		return nil, err
	}
	lang := i18n.NormalizeLanguage(q.Lang)
	metrics.SpotListRequests.WithLabelValues(string(category), strconv.FormatBool(q.Authenticated)).Inc()

	docs, updatedAt := s.cache.Snapshot()
	spots := FilterSpots(s.aggregator.Aggregate(category, docs), q.Term, lang)
	modes := GateModes(len(spots), s.cfg.FreeQuota, q.Authenticated)

	res := &ListResult{
		Category:  category,
		Lang:      lang,
		Query:     q.Term,
		Total:     len(spots),
		FreeQuota: s.cfg.FreeQuota,
		Cards:     make([]Card, len(spots)),
	}
	if !updatedAt.IsZero() {
		res.UpdatedAt = &updatedAt
	}
	for i := range spots {
		card := Card{Index: i, Mode: modes[i]}
		if modes[i] == RenderCard {
			card.Spot = NewSpotView(&spots[i], lang)
		} else {
			res.Locked++
		}
		res.Cards[i] = card
	}
	return res, nil
}

// GetSpot 深链：先在各分类聚合结果中按 slug/id 查找，找不到再回源查询单条文档
func (s *SpotService) GetSpot(ctx context.Context, id, lang string) (*SpotView, error) {
	lang = i18n.NormalizeLanguage(lang)
	docs, _ := s.cache.Snapshot()
	for _, category := range model.Categories {
		spots := s.aggregator.Aggregate(category, docs)
		for i := range spots {
			if spots[i].LinkID() == id || spots[i].ID == id {
				return NewSpotView(&spots[i], lang), nil
			}
		}
	}

	if s.repo == nil {
		return nil, ErrSpotNotFound
	}
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return nil, ErrSpotNotFound
		}
		s.logger.WithError(err).WithField("id", id).Warn("回源查询景点失败")
		return nil, ErrSpotNotFound
	}
	spot, err := s.aggregator.NormalizeDocument(row.ToDocument())
	if err != nil {
		return nil, err
	}
	return NewSpotView(spot, lang), nil
}

// Courses 编辑推荐路线，按语言解析标题与站点名
func (s *SpotService) Courses(lang string) []CourseView {
	return NewCourseViews(lang)
}
