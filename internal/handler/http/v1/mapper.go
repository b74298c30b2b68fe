package v1

import (
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/pkg/geo"
)

// ModelToTravelerResponse преобразует доменную модель в DTO для ответа.
// Человекочитаемое расстояние форматируется здесь, на границе API.
func ModelToTravelerResponse(model *models.TravelerResult) *TravelerResponse {
	resp := &TravelerResponse{
		UserID:             model.UserID,
		DisplayName:        model.DisplayName,
		PhotoURL:           model.PhotoURL,
		DistanceKm:         model.DistanceKm,
		Distance:           geo.FormatDistance(model.DistanceKm),
		LastActive:         model.LastActive,
		LastLocationUpdate: model.LastLocationUpdate,
	}
	if model.Coordinate != nil {
		resp.Latitude = model.Coordinate.Latitude
		resp.Longitude = model.Coordinate.Longitude
	}
	return resp
}

// ModelsToTravelerResponses преобразует слайс моделей в слайс DTO
func ModelsToTravelerResponses(models []*models.TravelerResult) []*TravelerResponse {
	responses := make([]*TravelerResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToTravelerResponse(model)
	}
	return responses
}

// ModelToPlaceResponse преобразует доменную модель места в DTO для ответа
func ModelToPlaceResponse(model *models.Place) *PlaceResponse {
	return &PlaceResponse{
		PlaceID:       model.PlaceID,
		Name:          model.Name,
		Latitude:      model.Coordinate.Latitude,
		Longitude:     model.Coordinate.Longitude,
		Category:      model.Category,
		Address:       model.Address,
		Rating:        model.Rating,
		RatingsTotal:  model.RatingsTotal,
		Website:       model.Website,
		PhoneNumber:   model.PhoneNumber,
		Operational:   model.Operational,
		TravelerCount: model.TravelerCount,
	}
}

// ModelsToPlaceResponses преобразует слайс моделей мест в слайс DTO
func ModelsToPlaceResponses(models []*models.Place) []*PlaceResponse {
	responses := make([]*PlaceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPlaceResponse(model)
	}
	return responses
}

// ModelToSharingResponse преобразует запись пользователя в DTO состояния шеринга
func ModelToSharingResponse(model *models.UserLocation) *SharingResponse {
	return &SharingResponse{
		UserID:             model.UserID,
		ShareLocation:      model.ShareLocation,
		LastLocationUpdate: model.LastLocationUpdate,
	}
}
