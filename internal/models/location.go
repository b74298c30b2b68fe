package models

import (
	"time"

	"github.com/travlrhub/proximity_service/pkg/geo"
)

// Coordinate - географическая координата в градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет диапазоны широты и долготы
func (c Coordinate) Valid() bool {
	return geo.Point{Lat: c.Latitude, Lon: c.Longitude}.Valid()
}

// Point преобразует координату в точку для географических вычислений
func (c *Coordinate) Point() *geo.Point {
	if c == nil {
		return nil
	}
	return &geo.Point{Lat: c.Latitude, Lon: c.Longitude}
}

// UserLocation представляет запись о местоположении пользователя.
// Если ShareLocation == false, координата считается отсутствующей
// независимо от того, что физически хранится в базе.
type UserLocation struct {
	UserID             string      `json:"user_id"`
	DisplayName        string      `json:"display_name"`
	PhotoURL           string      `json:"photo_url,omitempty"`
	Coordinate         *Coordinate `json:"coordinate,omitempty"` // nil, если пользователь не делится локацией
	ShareLocation      bool        `json:"share_location"`
	LastLocationUpdate time.Time   `json:"last_location_update,omitempty"`
	LastActive         time.Time   `json:"last_active,omitempty"`
}

// TravelerResult - найденный рядом путешественник. Производный результат,
// живет один цикл обработки запроса и нигде не кешируется.
type TravelerResult struct {
	UserID             string      `json:"user_id"`
	DisplayName        string      `json:"display_name"`
	PhotoURL           string      `json:"photo_url,omitempty"`
	Coordinate         *Coordinate `json:"coordinate"`
	DistanceKm         float64     `json:"distance_km"`
	LastActive         time.Time   `json:"last_active,omitempty"`
	LastLocationUpdate time.Time   `json:"last_location_update"`
}
