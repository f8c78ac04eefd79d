package dto

import "github.com/activity-finder/internal/domain"

// GeocodeResponse - координаты найденного места
type GeocodeResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ActivitiesResponse - ответ на поиск активностей
type ActivitiesResponse struct {
	Results []ActivityResult `json:"results"`
}

// ActivityResult - нормализованная активность
type ActivityResult struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// ConvertActivity converts a domain activity to its response shape.
func ConvertActivity(a domain.Activity) ActivityResult {
	return ActivityResult{
		ID:       a.ID,
		Name:     a.Name,
		Category: a.Category,
		Lat:      a.Lat,
		Lon:      a.Lon,
	}
}
