package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestPlacesService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPlacesService(t *testing.T) (*placesService, *mocks.MockPlacesProvider, *mocks.MockProximityService) {
	ctrl := gomock.NewController(t)
	providerMock := mocks.NewMockPlacesProvider(ctrl)
	proximityMock := mocks.NewMockProximityService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PlaceCountRadiusKm: 0.1,
		PlacesRadiusMeters: 1500,
	}

	service := NewPlacesService(providerMock, proximityMock, logger, cfg)
	return service.(*placesService), providerMock, proximityMock
}

func TestNearbyPlaces_DecoratesTravelerCounts(t *testing.T) {
	// Подготовка
	service, providerMock, proximityMock := newTestPlacesService(t)
	ctx := context.Background()
	center := models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	places := []*models.Place{
		{PlaceID: "place-1", Name: "Кафе у башни", Coordinate: models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}},
		{PlaceID: "place-2", Name: "Музей", Coordinate: models.Coordinate{Latitude: 48.8606, Longitude: 2.3376}},
	}

	// Ожидания
	providerMock.EXPECT().
		SearchNearby(ctx, center, 1500, "cafe").
		Return(places, nil).
		Times(1)

	// Счетчик зависит от координаты места
	proximityMock.EXPECT().
		TravelerCountNear(ctx, gomock.Any(), 0.1, "viewer-1").
		DoAndReturn(func(ctx context.Context, place *models.Coordinate, radiusKm float64, viewerID string) int {
			if place.Latitude == 48.8584 {
				return 3
			}
			return 0
		}).Times(2)

	// Действие
	result, err := service.NearbyPlaces(ctx, center, 1500, "cafe", "viewer-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].TravelerCount)
	assert.Equal(t, 0, result[1].TravelerCount)
}

func TestNearbyPlaces_DefaultRadius(t *testing.T) {
	// Подготовка
	service, providerMock, _ := newTestPlacesService(t)
	ctx := context.Background()
	center := models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	// Ожидания: нулевой радиус подставляется из конфигурации
	providerMock.EXPECT().
		SearchNearby(ctx, center, 1500, "").
		Return([]*models.Place{}, nil).
		Times(1)

	// Действие
	result, err := service.NearbyPlaces(ctx, center, 0, "", "")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestNearbyPlaces_ProviderError(t *testing.T) {
	// Подготовка
	service, providerMock, proximityMock := newTestPlacesService(t)
	ctx := context.Background()
	center := models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}

	// Ожидания
	providerMock.EXPECT().
		SearchNearby(ctx, center, 1500, "").
		Return(nil, fmt.Errorf("провайдер недоступен")).
		Times(1)
	proximityMock.EXPECT().TravelerCountNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.NearbyPlaces(ctx, center, 1500, "", "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not search nearby places")
}

func TestNearbyPlaces_InvalidCenter(t *testing.T) {
	// Подготовка
	service, providerMock, _ := newTestPlacesService(t)
	ctx := context.Background()

	// Ожидания
	providerMock.EXPECT().SearchNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.NearbyPlaces(ctx, models.Coordinate{Latitude: 200, Longitude: 0}, 1500, "", "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestPlaceDetails_Success(t *testing.T) {
	// Подготовка
	service, providerMock, proximityMock := newTestPlacesService(t)
	ctx := context.Background()
	place := &models.Place{
		PlaceID:    "place-1",
		Name:       "Кафе у башни",
		Coordinate: models.Coordinate{Latitude: 48.8584, Longitude: 2.2945},
	}

	// Ожидания
	providerMock.EXPECT().
		GetDetails(ctx, "place-1", defaultDetailFields).
		Return(place, nil).
		Times(1)

	proximityMock.EXPECT().
		TravelerCountNear(ctx, gomock.Any(), 0.1, "").
		Return(5).
		Times(1)

	// Действие
	result, err := service.PlaceDetails(ctx, "place-1")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 5, result.TravelerCount)
}

func TestPlaceDetails_NotResolved(t *testing.T) {
	// Подготовка
	service, providerMock, proximityMock := newTestPlacesService(t)
	ctx := context.Background()

	// Ожидания: провайдер не знает идентификатор - возвращается nil без ошибки
	providerMock.EXPECT().
		GetDetails(ctx, "unknown", defaultDetailFields).
		Return(nil, nil).
		Times(1)
	proximityMock.EXPECT().TravelerCountNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.PlaceDetails(ctx, "unknown")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPlaceDetails_MissingID(t *testing.T) {
	// Подготовка
	service, providerMock, _ := newTestPlacesService(t)
	ctx := context.Background()

	// Ожидания
	providerMock.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.PlaceDetails(ctx, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "place id is required")
}
