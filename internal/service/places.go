package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
)

//go:generate mockgen -source=places.go -destination=mocks/mock_places.go -package=mocks

// PlacesProvider определяет потребляемый интерфейс внешнего провайдера карт.
// SearchNearby возвращает пустой список при нуле совпадений и ошибку при
// транспортном сбое или отказе в авторизации. GetDetails возвращает nil
// (не ошибку), если провайдер не может разрешить идентификатор.
type PlacesProvider interface {
	SearchNearby(ctx context.Context, center models.Coordinate, radiusMeters int, category string) ([]*models.Place, error)
	GetDetails(ctx context.Context, placeID string, fields []string) (*models.Place, error)
}

// PlacesService определяет контракт работы с точками интереса
type PlacesService interface {
	NearbyPlaces(ctx context.Context, center models.Coordinate, radiusMeters int, category, viewerID string) ([]*models.Place, error)
	PlaceDetails(ctx context.Context, placeID string) (*models.Place, error)
}

// Поля, запрашиваемые у провайдера для детальной карточки места
var defaultDetailFields = []string{
	"place_id", "name", "geometry", "types", "rating",
	"user_ratings_total", "vicinity", "website",
	"formatted_phone_number", "business_status",
}

type placesService struct {
	provider  PlacesProvider
	proximity ProximityService
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewPlacesService(provider PlacesProvider, proximity ProximityService, logger *logrus.Logger, cfg *config.Config) PlacesService {
	return &placesService{
		provider:  provider,
		proximity: proximity,
		logger:    logger,
		cfg:       cfg,
	}
}

// NearbyPlaces запрашивает точки интереса у провайдера и декорирует каждую
// счетчиком путешественников рядом. Счетчик - сугубо информационная величина:
// он пересчитывается при каждой загрузке и при сбое просто остается нулем.
func (s *placesService) NearbyPlaces(ctx context.Context, center models.Coordinate, radiusMeters int, category, viewerID string) ([]*models.Place, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "places",
		"method":   "NearbyPlaces",
		"category": category,
	})

	if !center.Valid() {
		return nil, fmt.Errorf("service: center coordinate out of range")
	}
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.PlacesRadiusMeters
	}

	places, err := s.provider.SearchNearby(ctx, center, radiusMeters, category)
	if err != nil {
		log.WithError(err).Error("Failed to search nearby places")
		return nil, fmt.Errorf("service: could not search nearby places: %w", err)
	}

	for _, place := range places {
		coord := place.Coordinate
		place.TravelerCount = s.proximity.TravelerCountNear(ctx, &coord, s.cfg.PlaceCountRadiusKm, viewerID)
	}

	log.WithField("count", len(places)).Info("Nearby places fetched")
	return places, nil
}

// PlaceDetails возвращает детальную карточку места или nil, если провайдер
// не знает такой идентификатор
func (s *placesService) PlaceDetails(ctx context.Context, placeID string) (*models.Place, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "places",
		"method":   "PlaceDetails",
		"place_id": placeID,
	})

	if placeID == "" {
		return nil, fmt.Errorf("service: place id is required")
	}

	place, err := s.provider.GetDetails(ctx, placeID, defaultDetailFields)
	if err != nil {
		log.WithError(err).Error("Failed to get place details")
		return nil, fmt.Errorf("service: could not get place details: %w", err)
	}
	if place == nil {
		log.Warn("Place not resolved by provider")
		return nil, nil
	}

	coord := place.Coordinate
	place.TravelerCount = s.proximity.TravelerCountNear(ctx, &coord, s.cfg.PlaceCountRadiusKm, "")

	return place, nil
}
