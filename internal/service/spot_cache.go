package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/metrics"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
	"github.com/Takanoj0616/trip-app-sub000/internal/storage"

	"github.com/sirupsen/logrus"
)

// IsFresh now - timestamp < ttl 视为新鲜（毫秒精度）
func IsFresh(timestampMs int64, now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-timestampMs < ttl.Milliseconds()
}

// SpotCache 远端景点集合的内存状态 + 持久化缓存条目
type SpotCache struct {
	source interfaces.SpotSource
	store  *storage.Store
	cfg    *config.SpotsConfig
	logger *logrus.Logger
	now    func() time.Time

	// 同一时刻只允许一个刷新在跑
	refreshMu sync.Mutex

	mu        sync.RWMutex
	docs      []model.RemoteSpotDocument
	updatedAt time.Time
}

func NewSpotCache(source interfaces.SpotSource, store *storage.Store, cfg *config.SpotsConfig, logger *logrus.Logger) *SpotCache {
	return &SpotCache{
		source: source,
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock 替换时钟（测试用）
func (c *SpotCache) SetClock(now func() time.Time) {
	c.now = now
}

// Start 读取缓存条目：新鲜则立即作为内存状态，并延迟 refresh_delay 后刷新；
// 缺失或过期则立即刷新。返回的 channel 在首次刷新结束（或 ctx 取消）后关闭。
// refresh_interval > 0 时之后继续周期刷新，直到 ctx 取消。
func (c *SpotCache) Start(ctx context.Context) <-chan struct{} {
	var delay time.Duration
	if c.loadEntry(ctx) {
		delay = c.cfg.RefreshDelay
	}

	done := make(chan struct{})
	go func() {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				close(done)
				return
			case <-timer.C:
			}
		}
		_ = c.Refresh(ctx)
		close(done)

		if c.cfg.RefreshInterval <= 0 {
			return
		}
		ticker := time.NewTicker(c.cfg.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.Refresh(ctx)
			}
		}
	}()
	return done
}

// loadEntry 返回缓存是否新鲜；读取失败按缺失处理
func (c *SpotCache) loadEntry(ctx context.Context) bool {
	entry, err := c.store.LoadSpotsCache(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.WithError(err).Warn("读取景点缓存失败，按无缓存处理")
		}
		return false
	}
	if !IsFresh(entry.Timestamp, c.now(), c.cfg.CacheTTL) {
		c.logger.WithField("timestamp", entry.Timestamp).Debug("景点缓存已过期")
		return false
	}

	c.mu.Lock()
	c.docs = entry.Data
	c.updatedAt = time.UnixMilli(entry.Timestamp)
	c.mu.Unlock()
	metrics.SpotCacheDocuments.Set(float64(len(entry.Data)))
	c.logger.WithField("count", len(entry.Data)).Info("使用新鲜的景点缓存")
	return true
}

// Refresh 拉取远端集合：失败保留现有状态；成功替换内存状态并覆盖缓存条目（写失败忽略）
func (c *SpotCache) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	start := time.Now()
	docs, err := c.source.FetchSpots(ctx, c.cfg.FetchLimit)
	metrics.SpotCacheRefreshDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SpotCacheRefreshes.WithLabelValues("fetch_error").Inc()
		c.logger.WithError(err).Warn("拉取远端景点失败，保留现有数据")
		return fmt.Errorf("拉取远端景点失败: %w", err)
	}
	// 调用方已退出则不再写状态
	if err := ctx.Err(); err != nil {
		metrics.SpotCacheRefreshes.WithLabelValues("canceled").Inc()
		return err
	}

	now := c.now()
	c.mu.Lock()
	c.docs = docs
	c.updatedAt = now
	c.mu.Unlock()
	metrics.SpotCacheDocuments.Set(float64(len(docs)))

	entry := &storage.SpotsCacheEntry{Data: docs, Timestamp: now.UnixMilli()}
	if err := c.store.SaveSpotsCache(ctx, entry); err != nil {
		metrics.SpotCacheRefreshes.WithLabelValues("write_error").Inc()
		c.logger.WithError(err).Warn("写入景点缓存失败，已忽略")
		return nil
	}
	metrics.SpotCacheRefreshes.WithLabelValues("ok").Inc()
	c.logger.WithField("count", len(docs)).Info("远端景点刷新完成")
	return nil
}

// Snapshot 当前内存中的远端文档（只读）
func (c *SpotCache) Snapshot() ([]model.RemoteSpotDocument, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docs, c.updatedAt
}
