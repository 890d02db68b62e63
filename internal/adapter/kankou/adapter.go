package kankou

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

func NewKankouAdapter(opts *interfaces.NormalizeOptions, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{opts: opts, logger: logger}
}

func (a *Adapter) Kind() model.SourceKind {
	return model.SourceKankou
}

// Normalize kankou_* 观光表记录 → sights 分类展示记录
func (a *Adapter) Normalize(raw *model.RawSpotRecord) (*model.DisplaySpot, error) {
	var rec model.KankouRecord
	switch v := raw.Data.(type) {
	case model.KankouRecord:
		rec = v
	case *model.KankouRecord:
		if v == nil {
			return nil, fmt.Errorf("kankou记录为空: id=%s", raw.ID)
		}
		rec = *v
	default:
		return nil, fmt.Errorf("来源%s的数据类型不匹配: %T", raw.Source, raw.Data)
	}

	ticket := rec.TicketRequired
	spot := &model.DisplaySpot{
		ID:          raw.ID,
		Name:        infoblock.CopyText(rec.Name),
		ReviewCount: rec.Reviews,
		Images:      infoblock.CopyStrings(rec.Images),
		Badges:      infoblock.CopyStrings(rec.Badges),
		Tags:        infoblock.CopyStrings(rec.Tags),
		Category:    model.CategorySights,
		Info: infoblock.Sights(infoblock.SightsFields{
			StayRange:      rec.StayRange,
			AvgMinutes:     rec.AverageStayMinutes,
			Tags:           rec.Tags,
			CrowdLevel:     rec.CrowdLevel,
			Rating:         rec.Rating,
			BestTime:       rec.BestTime,
			TicketRequired: &ticket,
		}, a.opts),
	}
	model.FinalizeSpot(spot, rec.Rating, a.opts.PlaceholderImage)
	return spot, nil
}
