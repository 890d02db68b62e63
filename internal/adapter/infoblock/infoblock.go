// Package infoblock builds the category-shaped info block shared by all source adapters.
package infoblock

import (
	"github.com/Takanoj0616/trip-app-sub000/internal/estimate"
	"github.com/Takanoj0616/trip-app-sub000/internal/interfaces"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
)

// FoodFields 餐饮类信息来源字段
type FoodFields struct {
	PriceText  string
	PriceRange string
	Cuisine    string
	Distance   string
	Hours      string
}

func Food(f FoodFields, opts *interfaces.NormalizeOptions) model.SpotInfo {
	return model.SpotInfo{
		Price: estimate.Price(estimate.PriceInput{
			Explicit:   f.PriceText,
			PriceRange: f.PriceRange,
			Currency:   opts.Currency,
		}),
		Cuisine:  f.Cuisine,
		Distance: f.Distance,
		Hours:    f.Hours,
	}
}

// SightsFields 观光类信息来源字段
type SightsFields struct {
	StayRange      string
	AvgMinutes     *float64
	Tags           []string
	CrowdLevel     string
	Rating         *float64
	BestTime       string
	TicketRequired *bool
}

func Sights(f SightsFields, opts *interfaces.NormalizeOptions) model.SpotInfo {
	score, label := estimate.Crowd(estimate.CrowdInput{
		Explicit: f.CrowdLevel,
		Rating:   f.Rating,
		Now:      opts.Clock(),
		Location: opts.Location,
	})
	return model.SpotInfo{
		Duration: estimate.StayDuration(estimate.StayInput{
			Explicit:   f.StayRange,
			AvgMinutes: f.AvgMinutes,
			Tags:       f.Tags,
		}),
		TicketRequired: f.TicketRequired,
		BestTime:       f.BestTime,
		CrowdLevel:     label,
		CrowdScore:     score,
	}
}

// HotelFields 住宿类信息来源字段
type HotelFields struct {
	PricePerNight string
	PriceRange    string
	Stars         int
	CheckIn       string
	CheckOut      string
}

func Hotel(f HotelFields, opts *interfaces.NormalizeOptions) model.SpotInfo {
	stars := f.Stars
	if stars < 0 {
		stars = 0
	}
	return model.SpotInfo{
		PricePerNight: estimate.Price(estimate.PriceInput{
			Explicit:   f.PricePerNight,
			PriceRange: f.PriceRange,
			Currency:   opts.Currency,
		}),
		Stars:    stars,
		CheckIn:  f.CheckIn,
		CheckOut: f.CheckOut,
	}
}

// CopyStrings 拷贝切片，避免归一化结果与静态表共享底层数组
func CopyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// CopyText 拷贝多语言文本
func CopyText(in model.LocalizedText) model.LocalizedText {
	if in == nil {
		return nil
	}
	out := make(model.LocalizedText, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
