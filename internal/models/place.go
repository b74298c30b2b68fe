package models

// Place - точка интереса из внешнего провайдера карт.
// TravelerCount - локальная декорация: пересчитывается при каждой загрузке
// списка и никогда не записывается обратно в провайдера.
type Place struct {
	PlaceID       string     `json:"place_id"`
	Name          string     `json:"name"`
	Coordinate    Coordinate `json:"coordinate"`
	Category      string     `json:"category,omitempty"`
	Address       string     `json:"address,omitempty"`
	Rating        float64    `json:"rating,omitempty"`
	RatingsTotal  int        `json:"ratings_total,omitempty"`
	Website       string     `json:"website,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	Operational   bool       `json:"operational"`
	TravelerCount int        `json:"traveler_count"`
}
