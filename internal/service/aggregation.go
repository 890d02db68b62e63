package service

import (
	"github.com/Takanoj0616/trip-app-sub000/internal/adapter"
	"github.com/Takanoj0616/trip-app-sub000/internal/catalog"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"github.com/sirupsen/logrus"
)

// MergeCategory 按分类拼接三路数据并按 id 去重（先到先得）
// food：远端 → 主表 → 补充表；sights/hotels：主表 → 补充表 → 远端
func MergeCategory(category model.Category, static, supplementary, fetched []model.DisplaySpot) []model.DisplaySpot {
	var order [][]model.DisplaySpot
	if category == model.CategoryFood {
		order = [][]model.DisplaySpot{fetched, static, supplementary}
	} else {
		order = [][]model.DisplaySpot{static, supplementary, fetched}
	}

	total := len(static) + len(supplementary) + len(fetched)
	out := make([]model.DisplaySpot, 0, total)
	seen := make(map[string]struct{}, total)
	for _, part := range order {
		for _, s := range part {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			seen[s.ID] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Aggregator 把静态表与远端文档归一化后合并为单一分类列表
type Aggregator struct {
	registry *adapter.Registry
	logger   *logrus.Logger
}

func NewAggregator(registry *adapter.Registry, logger *logrus.Logger) *Aggregator {
	return &Aggregator{registry: registry, logger: logger}
}

// Aggregate 纯计算，不做任何 I/O；docs 为当前内存中的远端文档
func (a *Aggregator) Aggregate(category model.Category, docs []model.RemoteSpotDocument) []model.DisplaySpot {
	static := a.registry.NormalizeAll(catalog.Static(category))
	supplementary := a.registry.NormalizeAll(catalog.Supplementary(category))

	raws := make([]*model.RawSpotRecord, 0, len(docs))
	for _, d := range docs {
		raws = append(raws, model.NewRemoteRaw(d))
	}
	fetched := make([]model.DisplaySpot, 0, len(docs))
	for _, s := range a.registry.NormalizeAll(raws) {
		if s.Category == category {
			fetched = append(fetched, s)
		}
	}

	merged := MergeCategory(category, static, supplementary, fetched)
	a.logger.WithFields(logrus.Fields{
		"category":      category,
		"static":        len(static),
		"supplementary": len(supplementary),
		"fetched":       len(fetched),
		"merged":        len(merged),
	}).Debug("分类聚合完成")
	return merged
}

// NormalizeDocument 单个远端文档归一化（深链回源时使用）
func (a *Aggregator) NormalizeDocument(doc model.RemoteSpotDocument) (*model.DisplaySpot, error) {
	return a.registry.Normalize(model.NewRemoteRaw(doc))
}
