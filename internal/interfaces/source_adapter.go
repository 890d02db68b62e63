package interfaces

import (
	"context"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"github.com/sirupsen/logrus"
)

// SourceAdapter 每种原始数据来源必须实现的归一化接口
type SourceAdapter interface {
	Kind() model.SourceKind                                         // 来源类型
	Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) // 原始记录 → 展示记录
}

// NormalizeOptions 归一化时共用的环境参数
type NormalizeOptions struct {
	PlaceholderImage string           // 无图时的占位图
	Currency         string           // 价格兜底币种
	Location         *time.Location   // 拥挤度估算时区
	Now              func() time.Time // 可注入时钟，nil 用 time.Now
}

// Clock 返回当前时间（已转换到配置时区）
func (o *NormalizeOptions) Clock() time.Time {
	now := time.Now()
	if o.Now != nil {
		now = o.Now()
	}
	if o.Location != nil {
		now = now.In(o.Location)
	}
	return now
}

// Factory 来源适配器工厂函数签名
type Factory func(opts *NormalizeOptions, logger *logrus.Logger) SourceAdapter

// SpotSource 远端景点集合（按评分降序）
type SpotSource interface {
	FetchSpots(ctx context.Context, limit int) ([]model.RemoteSpotDocument, error)
}

// RecommendClient AI推荐上游
type RecommendClient interface {
	Recommend(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error)
}
