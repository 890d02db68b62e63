package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Takanoj0616/trip-app-sub000/internal/model"
)

const (
	SpotsCacheKey     = "firebase-spots-cache"
	freeUsesKeyPrefix = "ai-spots-free-uses:"
	ctaKeyPrefix      = "homeCtaVariant:"
)

// SpotsCacheEntry 远端景点缓存条目，Timestamp 为毫秒时间戳
type SpotsCacheEntry struct {
	Data      []model.RemoteSpotDocument `json:"data"`
	Timestamp int64                      `json:"timestamp"`
}

// Store 管线持久化状态的读写入口
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// LoadSpotsCache 不存在时返回 ErrNotFound；内容无法解析视为错误
func (s *Store) LoadSpotsCache(ctx context.Context) (*SpotsCacheEntry, error) {
	raw, err := s.kv.Get(ctx, SpotsCacheKey)
	if err != nil {
		return nil, err
	}
	var entry SpotsCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("解析景点缓存失败: %w", err)
	}
	return &entry, nil
}

func (s *Store) SaveSpotsCache(ctx context.Context, entry *SpotsCacheEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("序列化景点缓存失败: %w", err)
	}
	return s.kv.Set(ctx, SpotsCacheKey, string(b))
}

// FreeUses 访客已使用的免费推荐次数，未记录为 0
func (s *Store) FreeUses(ctx context.Context, visitor string) (int, error) {
	raw, err := s.kv.Get(ctx, freeUsesKeyPrefix+visitor)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("免费次数格式错误: %w", err)
	}
	return n, nil
}

// IncrFreeUses 成功一次加一，只增不减
func (s *Store) IncrFreeUses(ctx context.Context, visitor string) (int, error) {
	n, err := s.kv.Incr(ctx, freeUsesKeyPrefix+visitor)
	return int(n), err
}

// CtaVariant 已分配的分桶，未分配返回 ErrNotFound
func (s *Store) CtaVariant(ctx context.Context, visitor string) (string, error) {
	return s.kv.Get(ctx, ctaKeyPrefix+visitor)
}

// AssignCtaVariant 首次写入生效；并发时以先写入者为准并返回最终值
func (s *Store) AssignCtaVariant(ctx context.Context, visitor, variant string) (string, error) {
	ok, err := s.kv.SetNX(ctx, ctaKeyPrefix+visitor, variant)
	if err != nil {
		return "", err
	}
	if ok {
		return variant, nil
	}
	return s.kv.Get(ctx, ctaKeyPrefix+visitor)
}
