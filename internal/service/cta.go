package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/Takanoj0616/trip-app-sub000/internal/metrics"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/sirupsen/logrus"
)

const (
	CtaVariantA = "A"
	CtaVariantB = "B"
)

// CtaService 首页 CTA 文案 A/B 分桶：首次公平抛硬币，之后固定
type CtaService struct {
	store  *storage.Store
	logger *logrus.Logger
	flip   func() bool
}

func NewCtaService(store *storage.Store, logger *logrus.Logger) *CtaService {
	return &CtaService{
		store:  store,
		logger: logger,
		flip:   func() bool { return rand.IntN(2) == 0 },
	}
}

// SetCoin 替换随机源（测试用）
func (s *CtaService) SetCoin(flip func() bool) {
	s.flip = flip
}

// Variant 返回访客的分桶；存储不可用时仍返回一次性结果，只是不保证粘性
func (s *CtaService) Variant(ctx context.Context, visitor string) string {
	v, err := s.store.CtaVariant(ctx, visitor)
	if err == nil && (v == CtaVariantA || v == CtaVariantB) {
		return v
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.WithError(err).WithField("visitor", visitor).Warn("读取CTA分桶失败")
	}

	pick := s.flipName()
	assigned, err := s.store.AssignCtaVariant(ctx, visitor, pick)
	if err != nil {
		s.logger.WithError(err).WithField("visitor", visitor).Warn("写入CTA分桶失败")
		return pick
	}
	if !IsVariant(assigned) {
		return pick
	}
	if assigned == pick {
		metrics.CtaAssignments.WithLabelValues(pick).Inc()
	}
	return assigned
}

func (s *CtaService) flipName() string {
	if s.flip() {
		return CtaVariantA
	}
	return CtaVariantB
}

// IsVariant 事件上报时校验 variant 参数
func IsVariant(v string) bool {
	return v == CtaVariantA || v == CtaVariantB
}

// OtherEvent 不在白名单内的事件名统一记为该标签
const OtherEvent = "other"

// 允许作为指标标签的埋点事件名
var marketingEvents = map[string]struct{}{
	"page_view":        {},
	"cta_view":         {},
	"cta_click":        {},
	"signup_click":     {},
	"recommend_submit": {},
	"spot_view":        {},
	"course_view":      {},
	"share_click":      {},
	"language_change":  {},
}

// EventLabel 白名单内原样返回，否则返回 OtherEvent
func EventLabel(name string) string {
	if _, ok := marketingEvents[name]; ok {
		return name
	}
	return OtherEvent
}
