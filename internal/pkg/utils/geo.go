package utils

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса в метрах (1 м - 50 км)
func ValidateRadius(radiusM float64) bool {
	return radiusM >= 1 && radiusM <= 50000
}
