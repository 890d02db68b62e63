package service

import (
	"github.com/Takanoj0616/trip-app-sub000/internal/catalog"
	"github.com/Takanoj0616/trip-app-sub000/internal/i18n"
	"github.com/Takanoj0616/trip-app-sub000/internal/model"
)

type CourseStopView struct {
	SpotID   string         `json:"spot_id"`
	Category model.Category `json:"category"`
	Name     string         `json:"name"`
	Time     string         `json:"time"`
	Duration string         `json:"duration"`
}

type CourseView struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Area     string           `json:"area"`
	Duration string           `json:"duration"`
	Stops    []CourseStopView `json:"stops"`
}

func NewCourseViews(lang string) []CourseView {
	lang = i18n.NormalizeLanguage(lang)
	courses := catalog.Courses()
	out := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		v := CourseView{
			ID:       c.ID,
			Title:    c.Title.Resolve(lang),
			Area:     c.Area,
			Duration: c.Duration,
			Stops:    make([]CourseStopView, 0, len(c.Stops)),
		}
		for _, st := range c.Stops {
			v.Stops = append(v.Stops, CourseStopView{
				SpotID:   st.SpotID,
				Category: st.Category,
				Name:     st.Name.Resolve(lang),
				Time:     st.Time,
				Duration: st.Duration,
			})
		}
		out = append(out, v)
	}
	return out
}
