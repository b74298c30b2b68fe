package v1

import (
	"time"
)

// ReportLocationRequest DTO для приема измерения координат
// @Description DTO для приема измерения координат
type ReportLocationRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// SetSharingRequest DTO для переключения настройки шеринга
// @Description DTO для переключения настройки шеринга
type SetSharingRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// TravelerResponse DTO для найденного рядом путешественника
// @Description DTO для найденного рядом путешественника
type TravelerResponse struct {
	UserID             string    `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	PhotoURL           string    `json:"photo_url,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	DistanceKm         float64   `json:"distance_km"`
	Distance           string    `json:"distance"`
	LastActive         time.Time `json:"last_active,omitempty"`
	LastLocationUpdate time.Time `json:"last_location_update"`
}

// PlaceResponse DTO для точки интереса
// @Description DTO для точки интереса
type PlaceResponse struct {
	PlaceID       string  `json:"place_id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Category      string  `json:"category,omitempty"`
	Address       string  `json:"address,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	RatingsTotal  int     `json:"ratings_total,omitempty"`
	Website       string  `json:"website,omitempty"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Operational   bool    `json:"operational"`
	TravelerCount int     `json:"traveler_count"`
}

// SharingResponse DTO для текущего состояния шеринга пользователя
// @Description DTO для текущего состояния шеринга пользователя
type SharingResponse struct {
	UserID             string    `json:"user_id"`
	ShareLocation      bool      `json:"share_location"`
	LastLocationUpdate time.Time `json:"last_location_update,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	SharerCount int `json:"sharer_count"`
}
