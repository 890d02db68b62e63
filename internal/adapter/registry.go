package adapter

import (
	"fmt"
	"sort"

	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/hotel"
	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/kankou"
	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/remote"
	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/restaurant"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultFactories 来源类型 → 适配器工厂
func DefaultFactories() map[model.SourceKind]interfaces.Factory {
	return map[model.SourceKind]interfaces.Factory{
		model.SourceHotel:        hotel.NewHotelAdapter,
		model.SourceKankou:       kankou.NewKankouAdapter,
		model.SourceRestaurant:   restaurant.NewRestaurantAdapter,
		model.SourceTouristSpots: remote.NewRemoteAdapter,
	}
}

type Registry struct {
	logger *logrus.Logger
	// 来源类型 → 适配器实例
	adapters map[model.SourceKind]interfaces.SourceAdapter
}

func NewRegistry(factories map[model.SourceKind]interfaces.Factory, opts *interfaces.NormalizeOptions, logger *logrus.Logger) *Registry {
	r := &Registry{
		logger:   logger,
		adapters: make(map[model.SourceKind]interfaces.SourceAdapter, len(factories)),
	}
	for kind, factory := range factories {
		if factory == nil {
			logger.WithField("source", kind).Error("来源工厂函数为nil，跳过")
			continue
		}
		ins := factory(opts, logger)
		if ins == nil {
			logger.WithField("source", kind).Error("工厂函数返回nil适配器实例")
			continue
		}
		if ins.Kind() != kind {
			logger.WithFields(logrus.Fields{
				"config_source":  kind,
				"adapter_source": ins.Kind(),
			}).Error("适配器来源类型与注册不匹配")
			continue
		}
		r.adapters[kind] = ins
	}
	logger.WithField("sources", r.Kinds()).Debug("来源适配器初始化完成")
	return r
}

// Kinds 已注册的来源类型（排序后返回）
func (r *Registry) Kinds() []model.SourceKind {
	kinds := make([]model.SourceKind, 0, len(r.adapters))
	for k := range r.adapters {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (r *Registry) Get(kind model.SourceKind) (interfaces.SourceAdapter, error) {
	a, ok := r.adapters[kind]
	if !ok {
		return nil, fmt.Errorf("来源%s未注册适配器", kind)
	}
	return a, nil
}

// Normalize 按记录的来源标签分发到对应适配器
func (r *Registry) Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) {
	if raw == nil {
		return nil, fmt.Errorf("原始记录为空")
	}
	a, err := r.Get(raw.Source)
	if err != nil {
		return nil, err
	}
	return a.Normalize(raw)
}

// NormalizeAll 批量归一化，单条失败只记录日志并跳过
func (r *Registry) NormalizeAll(raws []*model.RawSpotRecord) []model.DisplaySpot {
	out := make([]model.DisplaySpot, 0, len(raws))
	for _, raw := range raws {
		spot, err := r.Normalize(raw)
		if err != nil {
			fields := logrus.Fields{}
			if raw != nil {
				fields["source"] = raw.Source
				fields["id"] = raw.ID
			}
			r.logger.WithFields(fields).WithError(err).Warn("景点记录归一化失败，已跳过")
			continue
		}
		out = append(out, *spot)
	}
	return out
}
