package service

import (
	"github.com/Takanoj0616/trip-app-sub000/internal/i18n"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
)

// SpotView 按请求语言解析后的景点
type SpotView struct {
	ID          string              `json:"id"`
	LinkID      string              `json:"link_id"`
	Name        string              `json:"name"`
	Names       model.LocalizedText `json:"names"`
	Category    model.Category      `json:"category"`
	Rating      float64             `json:"rating"`
	ReviewCount int                 `json:"review_count"`
	Image       string              `json:"image"`
	Images      []string            `json:"images"`
	Badges      []string            `json:"badges"`
	Tags        []string            `json:"tags"`
	Info        model.SpotInfo      `json:"info"`
}

// NewSpotView 名称在读取时按 lang 解析，徽章/标签/拥挤度走字典翻译
func NewSpotView(s *model.DisplaySpot, lang string) *SpotView {
	info := s.Info
	if info.CrowdLevel != "" {
		info.CrowdLevel = i18n.Label(info.CrowdLevel, lang)
	}
	badges := i18n.Labels(s.Badges, lang)
	if badges == nil {
		badges = []string{}
	}
	tags := i18n.Labels(s.Tags, lang)
	if tags == nil {
		tags = []string{}
	}
	return &SpotView{
		ID:          s.ID,
		LinkID:      s.LinkID(),
		Name:        s.Name.Resolve(lang),
		Names:       s.Name,
		Category:    s.Category,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		Image:       s.Image,
		Images:      s.Images,
		Badges:      badges,
		Tags:        tags,
		Info:        info,
	}
}

// Card 列表中的一张卡片；锁定卡片只暴露序号
type Card struct {
	Index int        `json:"index"`
	Mode  RenderMode `json:"mode"`
	Spot  *SpotView  `json:"spot,omitempty"`
}
