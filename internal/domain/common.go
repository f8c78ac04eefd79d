package domain

// Coordinate - географическая точка
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ActivityQuery - параметры поиска активностей в радиусе от точки
type ActivityQuery struct {
	Lat        float64
	Lon        float64
	Radius     float64 // meters
	Categories []string
}
