package geo

import (
	"fmt"
	"math"
)

// Радиус Земли в километрах
const earthRadiusKm = 6371.0

// Point - географическая точка
type Point struct {
	Lat float64 `json:"lat"` // Широта (-90 до 90)
	Lon float64 `json:"lon"` // Долгота (-180 до 180)
}

// Valid проверяет, что координаты попадают в допустимые диапазоны
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceKm вычисляет расстояние между двумя точками по формуле гаверсинусов.
// Если одна из точек отсутствует (nil), возвращает +Inf - такой результат
// используется только для отбрасывания записи и никогда не показывается пользователю.
func DistanceKm(a, b *Point) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}

	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FormatDistance форматирует расстояние для отображения.
// Отрицательные, NaN и бесконечные значения дают "N/A".
func FormatDistance(d float64) string {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return "N/A"
	}
	if d < 1 {
		return fmt.Sprintf("%d m", int(math.Round(d*1000)))
	}
	return fmt.Sprintf("%.1f km", d)
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
