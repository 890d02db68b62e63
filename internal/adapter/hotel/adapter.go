package hotel

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

func NewHotelAdapter(opts *interfaces.NormalizeOptions, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{opts: opts, logger: logger}
}

func (a *Adapter) Kind() model.SourceKind {
	return model.SourceHotel
}

// Normalize hotel_* 表记录 → hotels 分类展示记录
func (a *Adapter) Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) {
	var rec model.HotelRecord
	switch v := raw.Data.(type) {
	case model.HotelRecord:
		rec = v
	case *model.HotelRecord:
		if v == nil {
			return nil, fmt.Errorf("hotel记录为空: id=%s", raw.ID)
		}
		rec = *v
	default:
		return nil, fmt.Errorf("来源%s的数据类型不匹配: %T", raw.Source, raw.Data)
	}

	spot := &model.DisplaySpot{
		ID:          raw.ID,
		Name:        infoblock.CopyText(rec.Name),
		ReviewCount: rec.Reviews,
		Images:      infoblock.CopyStrings(rec.Images),
		Badges:      infoblock.CopyStrings(rec.Badges),
		Tags:        infoblock.CopyStrings(rec.Tags),
		Category:    model.CategoryHotels,
		Info: infoblock.Hotel(infoblock.HotelFields{
			PricePerNight: rec.PricePerNight,
			PriceRange:    rec.PriceRange,
			Stars:         rec.Stars,
			CheckIn:       rec.CheckIn,
			CheckOut:      rec.CheckOut,
		}, a.opts),
	}
	model.FinalizeSpot(spot, rec.Rating, a.opts.PlaceholderImage)
	return spot, nil
}
