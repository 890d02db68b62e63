package catalog

import "github.com/Takanoj0616/trip-app-sub000/internal/model"

// hotel_* 住宿静态表
var hotelSpots = []model.HotelRecord{
	{
		ID:            101,
		Name:          model.LocalizedText{"en": "Park Hyatt Tokyo", "ja": "パーク ハイアット 東京", "ko": "파크 하얏트 도쿄", "fr": "Park Hyatt Tokyo"},
		Area:          "Shinjuku",
		Rating:        f64(4.7),
		Reviews:       3150,
		Images:        []string{"/images/hotels/park-hyatt.jpg"},
		PricePerNight: "¥120,000~",
		Stars:         5,
		CheckIn:       "15:00",
		CheckOut:      "12:00",
		Tags:          []string{"luxury", "view"},
		Badges:        []string{"free wifi"},
	},
	{
		ID:         102,
		Name:       model.LocalizedText{"en": "Hoshinoya Tokyo", "ja": "星のや東京", "ko": "호시노야 도쿄", "fr": "Hoshinoya Tokyo"},
		Area:       "Otemachi",
		Rating:     f64(4.8),
		Reviews:    980,
		Images:     []string{"/images/hotels/hoshinoya.jpg"},
		PriceRange: "expensive",
		Stars:      5,
		CheckIn:    "15:00",
		CheckOut:   "12:00",
		Tags:       []string{"ryokan", "onsen", "luxury"},
		Badges:     []string{"reservation"},
	},
	{
		ID:            103,
		Name:          model.LocalizedText{"en": "Dormy Inn Akihabara", "ja": "ドーミーイン秋葉原", "ko": "도미 인 아키하바라"},
		Area:          "Akihabara",
		Rating:        f64(4.3),
		Reviews:       4200,
		Images:        []string{"/images/hotels/dormy-akiba.jpg"},
		PricePerNight: "¥14,000~",
		Stars:         3,
		CheckIn:       "15:00",
		CheckOut:      "11:00",
		Tags:          []string{"onsen", "business"},
		Badges:        []string{"free wifi", "station nearby"},
	},
	{
		ID:         104,
		Name:       model.LocalizedText{"en": "Hotel Gracery Shinjuku", "ja": "ホテルグレイスリー新宿", "ko": "호텔 그레이서리 신주쿠", "fr": "Hôtel Gracery Shinjuku"},
		Area:       "Shinjuku",
		Rating:     f64(4.2),
		Reviews:    8800,
		Images:     []string{"/images/hotels/gracery.jpg"},
		PriceRange: "moderate",
		Stars:      3,
		CheckIn:    "14:00",
		CheckOut:   "11:00",
		Tags:       []string{"anime", "business"},
		Badges:     []string{"station nearby"},
	},
	{
		ID:       105,
		Name:     model.LocalizedText{"ja": "旅館 澤の屋", "en": "Sawanoya Ryokan"},
		Area:     "Yanaka",
		Reviews:  640,
		Stars:    2,
		CheckIn:  "15:00",
		CheckOut: "10:00",
		Tags:     []string{"ryokan", "family"},
	},
}

var hotelExtras = []model.HotelRecord{}
