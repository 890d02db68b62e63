package catalog

import "github.com/Takanoj0616/trip-app-sub000/internal/model"

// CourseStop 模型路线中的一站
type CourseStop struct {
	SpotID   string              `json:"spotId"`
	Category model.Category      `json:"category"`
	Name     model.LocalizedText `json:"name"`
	Time     string              `json:"time"`
	Duration string              `json:"duration"`
}

// Course 编辑推荐的模型路线
type Course struct {
	ID       string              `json:"id"`
	Title    model.LocalizedText `json:"title"`
	Area     string              `json:"area"`
	Duration string              `json:"duration"`
	Stops    []CourseStop        `json:"stops"`
}

var courses = []Course{
	{
		ID:       "asakusa-ueno-classic",
		Title:    model.LocalizedText{"en": "Classic Asakusa & Ueno", "ja": "浅草・上野 定番コース", "ko": "아사쿠사·우에노 클래식", "fr": "Asakusa et Ueno classiques"},
		Area:     "Asakusa",
		Duration: "1 day",
		Stops: []CourseStop{
			{SpotID: "1", Category: model.CategorySights, Name: kankouSpots[0].Name, Time: "09:00", Duration: "60-90 min"},
			{SpotID: "food-extra-2", Category: model.CategoryFood, Name: model.Replicate("Tsukiji Outer Market"), Time: "11:30", Duration: "60 min"},
			{SpotID: "3", Category: model.CategorySights, Name: kankouSpots[2].Name, Time: "14:00", Duration: "120 min"},
		},
	},
	{
		ID:       "shibuya-harajuku-modern",
		Title:    model.LocalizedText{"en": "Modern Shibuya & Harajuku", "ja": "渋谷・原宿 モダンコース", "ko": "시부야·하라주쿠 모던", "fr": "Shibuya et Harajuku modernes"},
		Area:     "Shibuya",
		Duration: "half day",
		Stops: []CourseStop{
			{SpotID: "2", Category: model.CategorySights, Name: kankouSpots[1].Name, Time: "10:00", Duration: "50-90 min"},
			{SpotID: "food-extra-1", Category: model.CategoryFood, Name: model.Replicate("Afuri Harajuku"), Time: "12:00", Duration: "45 min"},
			{SpotID: "4", Category: model.CategorySights, Name: kankouSpots[3].Name, Time: "17:00", Duration: "60-90 min"},
		},
	},
	{
		ID:       "books-and-coffee",
		Title:    model.LocalizedText{"en": "Books & Coffee", "ja": "本とコーヒーの散歩道", "ko": "책과 커피 산책"},
		Area:     "Daikanyama",
		Duration: "half day",
		Stops: []CourseStop{
			{SpotID: "book-1", Category: model.CategoryFood, Name: model.Replicate("Tsutaya Daikanyama"), Time: "10:00", Duration: "30-60 min"},
			{SpotID: "book-3", Category: model.CategoryFood, Name: model.Replicate("Jimbocho Book Town"), Time: "13:00", Duration: "30-60 min"},
		},
	},
}

// Courses 全部模型路线（返回副本）
func Courses() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}
