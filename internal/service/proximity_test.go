package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestProximityService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestProximityService(t *testing.T) (*proximityService, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StalenessCutoff:       30 * time.Minute,
		FetchBatchSize:        100,
		PlaceCountRadiusKm:    0.1,
		PlaceCountExcludeSelf: false,
	}

	service := NewProximityService(repoMock, logger, cfg)
	return service.(*proximityService), repoMock
}

// sharedLocation — короткий конструктор свежей записи для тестов.
func sharedLocation(userID string, lat, lon float64, updatedAt time.Time) *models.UserLocation {
	return &models.UserLocation{
		UserID:             userID,
		DisplayName:        "Путешественник " + userID,
		Coordinate:         &models.Coordinate{Latitude: lat, Longitude: lon},
		ShareLocation:      true,
		LastLocationUpdate: updatedAt,
		LastActive:         updatedAt,
	}
}

func TestFindNearbyTravelers_FiltersAndSorts(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("far", 41.0, -75.0, now),       // ~140 км, за пределами радиуса
		sharedLocation("near", 40.001, -74.001, now),  // ~140 м
		sharedLocation("closer", 40.0002, -74.0, now), // ~22 м
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, reference, "", 10.0, 0)

	// Проверки
	require.Len(t, travelers, 2)
	assert.Equal(t, "closer", travelers[0].UserID)
	assert.Equal(t, "near", travelers[1].UserID)
	assert.Less(t, travelers[0].DistanceKm, travelers[1].DistanceKm)
	assert.Greater(t, travelers[0].DistanceKm, 0.0)
}

func TestFindNearbyTravelers_ExcludesSelf(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("me", 40.0, -74.0, now),
		sharedLocation("other", 40.001, -74.0, now),
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, reference, "me", 10.0, 0)

	// Проверки
	require.Len(t, travelers, 1)
	assert.Equal(t, "other", travelers[0].UserID)
}

func TestFindNearbyTravelers_SkipsStaleAndInvalidRecords(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}
	now := time.Now()

	// Запись без координаты: флаг шеринга включен, но записывать было нечего
	noCoord := sharedLocation("no-coord", 0, 0, now)
	noCoord.Coordinate = nil

	records := []*models.UserLocation{
		sharedLocation("fresh", 40.001, -74.0, now),
		sharedLocation("stale", 40.001, -74.0, now.Add(-40*time.Minute)),
		noCoord,
		sharedLocation("broken", 95.0, -74.0, now), // широта за пределами диапазона
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, reference, "", 10.0, 0)

	// Проверки
	require.Len(t, travelers, 1)
	assert.Equal(t, "fresh", travelers[0].UserID)
}

func TestFindNearbyTravelers_TruncatesToMaxResults(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("a", 40.003, -74.0, now),
		sharedLocation("b", 40.001, -74.0, now),
		sharedLocation("c", 40.002, -74.0, now),
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, reference, "", 10.0, 2)

	// Проверки: остаются двое ближайших, порядок по возрастанию расстояния
	require.Len(t, travelers, 2)
	assert.Equal(t, "b", travelers[0].UserID)
	assert.Equal(t, "c", travelers[1].UserID)
}

func TestFindNearbyTravelers_EmptyOnRepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(nil, fmt.Errorf("база недоступна")).
		Times(1)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, reference, "", 10.0, 0)

	// Проверки: деградация до пустого списка, без паники и без ошибки
	require.NotNil(t, travelers)
	assert.Empty(t, travelers)
}

func TestFindNearbyTravelers_EmptyOnNilReference(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()

	// Ожидания: до репозитория не доходим
	repoMock.EXPECT().ListSharedSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	travelers := service.FindNearbyTravelers(ctx, nil, "", 10.0, 0)

	// Проверки
	require.NotNil(t, travelers)
	assert.Empty(t, travelers)
}

func TestFindNearbyTravelers_Repeatable(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	reference := &models.Coordinate{Latitude: 40.0, Longitude: -74.0}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("a", 40.001, -74.0, now),
		sharedLocation("b", 40.002, -74.0, now),
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(2)

	// Действие: повторный вызов над теми же данными
	first := service.FindNearbyTravelers(ctx, reference, "", 10.0, 0)
	second := service.FindNearbyTravelers(ctx, reference, "", 10.0, 0)

	// Проверки: тот же состав и тот же порядок
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].UserID, second[i].UserID)
	}
}

func TestTravelerCountNear_CountsWithinRadius(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	place := &models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("inside-1", 48.8584, 2.2945, now),  // в самой точке
		sharedLocation("inside-2", 48.8588, 2.2945, now),  // ~44 м
		sharedLocation("inside-3", 48.8581, 2.2948, now),  // ~40 м
		sharedLocation("outside-1", 48.8629, 2.2945, now), // ~500 м
		sharedLocation("outside-2", 48.8540, 2.2890, now), // ~640 м
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие: радиус 0 подставляется из конфигурации (0.1 км)
	count := service.TravelerCountNear(ctx, place, 0, "")

	// Проверки
	assert.Equal(t, 3, count)
}

func TestTravelerCountNear_DoesNotExcludeViewerByDefault(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	place := &models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("viewer", 48.8584, 2.2945, now),
		sharedLocation("other", 48.8585, 2.2945, now),
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	count := service.TravelerCountNear(ctx, place, 0.1, "viewer")

	// Проверки: зритель физически в точке и тоже попадает в счетчик
	assert.Equal(t, 2, count)
}

func TestTravelerCountNear_ExcludesViewerWhenConfigured(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	service.cfg.PlaceCountExcludeSelf = true
	ctx := context.Background()
	place := &models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}
	now := time.Now()

	records := []*models.UserLocation{
		sharedLocation("viewer", 48.8584, 2.2945, now),
		sharedLocation("other", 48.8585, 2.2945, now),
	}

	// Ожидания
	repoMock.EXPECT().
		ListSharedSince(ctx, gomock.Any(), 100).
		Return(records, nil).
		Times(1)

	// Действие
	count := service.TravelerCountNear(ctx, place, 0.1, "viewer")

	// Проверки
	assert.Equal(t, 1, count)
}

func TestTravelerCountNear_ZeroOnInvalidPlace(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()

	// Ожидания: до репозитория не доходим
	repoMock.EXPECT().ListSharedSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	count := service.TravelerCountNear(ctx, nil, 0.1, "")

	// Проверки
	assert.Equal(t, 0, count)
}

func TestActiveSharerCount_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()
	expectedCount := 42

	// Ожидания
	repoMock.EXPECT().
		CountSharedSince(ctx, gomock.Any()).
		Return(expectedCount, nil).
		Times(1)

	// Действие
	count, err := service.ActiveSharerCount(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedCount, count)
}

func TestActiveSharerCount_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProximityService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CountSharedSince(ctx, gomock.Any()).
		Return(0, fmt.Errorf("база недоступна")).
		Times(1)

	// Действие
	count, err := service.ActiveSharerCount(ctx)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, count)
	assert.ErrorContains(t, err, "could not count active sharers")
}
