// Package catalog holds the static spot tables compiled into the binary and
// exposes them as tagged raw records, grouped by display category.
package catalog

import "github.com/Takanoj0616/trip-app-sub000/internal/model"

// Static 分类主表
func Static(category model.Category) []*model.RawSpotRecord {
	switch category {
	case model.CategoryFood:
		return restaurantRaws(restaurants)
	case model.CategorySights:
		return kankouRaws(kankouSpots)
	case model.CategoryHotels:
		return hotelRaws(hotelSpots)
	}
	return nil
}

// Supplementary 分类补充表；food 依次并入书店和餐厅补充表
func Supplementary(category model.Category) []*model.RawSpotRecord {
	switch category {
	case model.CategoryFood:
		out := restaurantRaws(bookstores)
		return append(out, restaurantRaws(restaurantExtras)...)
	case model.CategorySights:
		return kankouRaws(sightsExtras)
	case model.CategoryHotels:
		return hotelRaws(hotelExtras)
	}
	return nil
}

func restaurantRaws(recs []model.RestaurantRecord) []*model.RawSpotRecord {
	out := make([]*model.RawSpotRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.NewRestaurantRaw(r))
	}
	return out
}

func kankouRaws(recs []model.KankouRecord) []*model.RawSpotRecord {
	out := make([]*model.RawSpotRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.NewKankouRaw(r))
	}
	return out
}

func hotelRaws(recs []model.HotelRecord) []*model.RawSpotRecord {
	out := make([]*model.RawSpotRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.NewHotelRaw(r))
	}
	return out
}
