package domain

// Activity представляет нормализованную точку интереса для детей и семей
type Activity struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// UnnamedPlaceholder substitutes for elements without a name tag.
const UnnamedPlaceholder = "(unnamed)"
