package restaurant

import (
	"fmt"

	"github.com/Takanoj0616/trip-app-sub000/internal/adapter/infoblock"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"

	"github.com/sirupsen/logrus"
)

type Adapter struct {
	opts   *interfaces.NormalizeOptions
	logger *logrus.Logger
}

func NewRestaurantAdapter(opts *interfaces.NormalizeOptions, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{opts: opts, logger: logger}
}

func (a *Adapter) Kind() model.SourceKind {
	return model.SourceRestaurant
}

// Normalize 餐厅/书店表记录 → food 分类展示记录（单语言名称复制到所有语言）
func (a *Adapter) Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) {
	var rec model.RestaurantRecord
	switch v := raw.Data.(type) {
	case model.RestaurantRecord:
		rec = v
	case *model.RestaurantRecord:
		if v == nil {
			return nil, fmt.Errorf("restaurant记录为空: id=%s", raw.ID)
		}
		rec = *v
	default:
		return nil, fmt.Errorf("来源%s的数据类型不匹配: %T", raw.Source, raw.Data)
	}

	var images []string
	if rec.Image != "" {
		images = []string{rec.Image}
	}
	spot := &model.DisplaySpot{
		ID:          raw.ID,
		Name:        model.Replicate(rec.Name),
		ReviewCount: rec.ReviewCount,
		Images:      images,
		Badges:      infoblock.CopyStrings(rec.Badges),
		Tags:        infoblock.CopyStrings(rec.Tags),
		Category:    model.CategoryFood,
		Info: infoblock.Food(infoblock.FoodFields{
			PriceText:  rec.PriceText,
			PriceRange: rec.PriceRange,
			Cuisine:    rec.Cuisine,
			Distance:   rec.Distance,
			Hours:      rec.OpeningHours,
		}, a.opts),
	}
	model.FinalizeSpot(spot, rec.Rating, a.opts.PlaceholderImage)
	return spot, nil
}
