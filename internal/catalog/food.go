package catalog

import "github.com/Takanoj0616/trip-app-sub000/internal/model"

// 餐厅主表
var restaurants = []model.RestaurantRecord{
	{
		ID:           "food-1",
		Name:         "Sushi Kiri",
		Rating:       f64(4.6),
		ReviewCount:  812,
		Image:        "/images/food/sushi-kiri.jpg",
		Cuisine:      "Sushi",
		PriceRange:   "expensive",
		Distance:     "3 min from Ginza Sta.",
		OpeningHours: "11:30-14:00, 17:30-22:00",
		Tags:         []string{"sushi"},
		Badges:       []string{"reservation", "english menu"},
	},
	{
		ID:           "food-2",
		Name:         "Bistro Raku",
		Rating:       f64(4.2),
		ReviewCount:  233,
		Image:        "/images/food/bistro-raku.jpg",
		Cuisine:      "French",
		PriceText:    "¥2,500~",
		Distance:     "5 min from Ebisu Sta.",
		OpeningHours: "18:00-23:00",
		Tags:         []string{"cafe"},
		Badges:       []string{"late night"},
	},
	{
		ID:           "food-3",
		Name:         "Ichiran Shibuya",
		Rating:       f64(4.4),
		ReviewCount:  15200,
		Image:        "/images/food/ichiran.jpg",
		Cuisine:      "Ramen",
		PriceRange:   "budget",
		Distance:     "2 min from Shibuya Sta.",
		OpeningHours: "24h",
		Tags:         []string{"ramen"},
		Badges:       []string{"open now", "popular"},
	},
	{
		ID:           "food-4",
		Name:         "Tempura Kondo",
		Rating:       f64(4.5),
		ReviewCount:  640,
		Cuisine:      "Tempura",
		PriceRange:   "expensive",
		Distance:     "4 min from Ginza Sta.",
		OpeningHours: "12:00-15:00, 17:00-20:30",
		Tags:         []string{"tempura"},
		Badges:       []string{"michelin", "reservation"},
	},
	{
		ID:           "food-5",
		Name:         "Uoshin Nogizaka",
		ReviewCount:  410,
		Image:        "/images/food/uoshin.jpg",
		Cuisine:      "Izakaya",
		PriceRange:   "moderate",
		OpeningHours: "17:00-23:30",
		Tags:         []string{"izakaya"},
	},
}

// 书店表（并入 food 分类）
var bookstores = []model.RestaurantRecord{
	{
		ID:           "book-1",
		Name:         "Tsutaya Daikanyama",
		Rating:       f64(4.5),
		ReviewCount:  5300,
		Image:        "/images/books/tsutaya.jpg",
		Cuisine:      "Book cafe",
		PriceRange:   "budget",
		Distance:     "5 min from Daikanyama Sta.",
		OpeningHours: "9:00-22:00",
		Tags:         []string{"bookstore", "cafe"},
		Badges:       []string{"free wifi"},
	},
	{
		ID:           "book-2",
		Name:         "Kinokuniya Shinjuku",
		Rating:       f64(4.3),
		ReviewCount:  2100,
		Image:        "/images/books/kinokuniya.jpg",
		OpeningHours: "10:00-21:00",
		Tags:         []string{"bookstore", "shopping"},
		Badges:       []string{"tax free"},
	},
	{
		ID:          "book-3",
		Name:        "Jimbocho Book Town",
		Rating:      f64(4.1),
		ReviewCount: 870,
		Tags:        []string{"bookstore", "history"},
	},
}

// 餐厅补充表
var restaurantExtras = []model.RestaurantRecord{
	{
		ID:           "food-extra-1",
		Name:         "Afuri Harajuku",
		Rating:       f64(4.3),
		ReviewCount:  3900,
		Image:        "/images/food/afuri.jpg",
		Cuisine:      "Ramen",
		PriceText:    "¥1,300~",
		Distance:     "4 min from Harajuku Sta.",
		OpeningHours: "10:30-23:00",
		Tags:         []string{"ramen"},
		Badges:       []string{"english menu"},
	},
	{
		ID:           "food-extra-2",
		Name:         "Tsukiji Outer Market",
		Rating:       f64(4.4),
		ReviewCount:  22000,
		Image:        "/images/food/tsukiji.jpg",
		Cuisine:      "Seafood",
		PriceRange:   "moderate",
		OpeningHours: "5:00-14:00",
		Tags:         []string{"sushi", "shopping"},
		Badges:       []string{"popular"},
	},
	// 与主表重复的条目，聚合时按先到先得去重
	{
		ID:      "food-3",
		Name:    "Ichiran Shibuya (annex)",
		Rating:  f64(4.0),
		Cuisine: "Ramen",
		Tags:    []string{"ramen"},
	},
}
