package dto

// GeocodeRequest - запрос на геокодирование названия города
type GeocodeRequest struct {
	City string `json:"city" validate:"required"`
}

// ActivitiesRequest - запрос на поиск активностей в радиусе
type ActivitiesRequest struct {
	Lat        float64  `json:"lat" validate:"min=-90,max=90"`
	Lon        float64  `json:"lon" validate:"min=-180,max=180"`
	Radius     float64  `json:"radius" validate:"required,min=1,max=50000"` // meters
	Categories []string `json:"categories" validate:"required,min=1,dive,oneof=playground park theme_park zoo museum water_park"`
}
