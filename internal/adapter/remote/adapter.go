package remote

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

func NewRemoteAdapter(opts *interfaces.NormalizeOptions, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{opts: opts, logger: logger}
}

func (a *Adapter) Kind() model.SourceKind {
	return model.SourceTouristSpots
}

// Normalize tourist_spots 文档 → 展示记录，分类按映射表确定，文档ID同时作为 slug
func (a *Adapter) Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) {
	var doc model.RemoteSpotDocument
	switch v := raw.Data.(type) {
	case model.RemoteSpotDocument:
		doc = v
	case *model.RemoteSpotDocument:
		if v == nil {
			return nil, fmt.Errorf("远端文档为空: id=%s", raw.ID)
		}
		doc = *v
	default:
		return nil, fmt.Errorf("来源%s的数据类型不匹配: %T", raw.Source, raw.Data)
	}

	reviews := 0
	if doc.ReviewCount != nil {
		reviews = *doc.ReviewCount
	}
	category := model.MapSourceCategory(doc.Category)
	spot := &model.DisplaySpot{
		ID:          raw.ID,
		Slug:        doc.ID,
		Name:        infoblock.CopyText(doc.Name.Text),
		ReviewCount: reviews,
		Images:      infoblock.CopyStrings(doc.Images),
		Badges:      infoblock.CopyStrings(doc.Badges),
		Tags:        infoblock.CopyStrings(doc.Tags),
		Category:    category,
	}

	switch category {
	case model.CategoryFood:
		spot.Info = infoblock.Food(infoblock.FoodFields{
			PriceText:  doc.PriceText,
			PriceRange: doc.PriceRange,
			Cuisine:    doc.Cuisine,
			Distance:   doc.Location,
			Hours:      doc.OpeningHours,
		}, a.opts)
	case model.CategoryHotels:
		spot.Info = infoblock.Hotel(infoblock.HotelFields{
			PricePerNight: doc.PriceText,
			PriceRange:    doc.PriceRange,
			Stars:         doc.Stars,
			CheckIn:       doc.CheckIn,
			CheckOut:      doc.CheckOut,
		}, a.opts)
	default:
		spot.Info = infoblock.Sights(infoblock.SightsFields{
			StayRange:      doc.StayRange,
			AvgMinutes:     doc.AverageStayMinutes,
			Tags:           doc.Tags,
			CrowdLevel:     doc.CrowdLevel,
			Rating:         doc.Rating,
			BestTime:       doc.BestTime,
			TicketRequired: doc.TicketRequired,
		}, a.opts)
	}

	model.FinalizeSpot(spot, doc.Rating, a.opts.PlaceholderImage)
	return spot, nil
}
