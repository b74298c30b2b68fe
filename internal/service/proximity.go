package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/pkg/geo"
)

//go:generate mockgen -source=proximity.go -destination=mocks/mock_proximity.go -package=mocks

// LocationRepository определяет контракт для работы с записями местоположений
type LocationRepository interface {
	SaveFix(ctx context.Context, userID string, coord models.Coordinate) error
	SetSharing(ctx context.Context, userID string, enabled bool) error
	GetByID(ctx context.Context, userID string) (*models.UserLocation, error)
	ListSharedSince(ctx context.Context, since time.Time, limit int) ([]*models.UserLocation, error)
	CountSharedSince(ctx context.Context, since time.Time) (int, error)
	GetUserFromCache(ctx context.Context, userID string) (*models.UserLocation, error)
	SetUserCache(ctx context.Context, user *models.UserLocation) error
	InvalidateUserCache(ctx context.Context, userID string) error
}

// ProximityService определяет контракт поиска попутчиков рядом с точкой.
//
// FindNearbyTravelers и TravelerCountNear деградируют до пустого результата:
// при любой ошибке хранилища или некорректных входных данных они возвращают
// пустой список / ноль, а не ошибку. Это презентационная фича - сбой логируется,
// но никогда не поднимается наверх.
type ProximityService interface {
	FindNearbyTravelers(ctx context.Context, reference *models.Coordinate, excludeUserID string, maxDistanceKm float64, maxResults int) []*models.TravelerResult
	TravelerCountNear(ctx context.Context, place *models.Coordinate, radiusKm float64, viewerID string) int
	ActiveSharerCount(ctx context.Context) (int, error)
}

type proximityService struct {
	repo   LocationRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewProximityService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config) ProximityService {
	return &proximityService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// FindNearbyTravelers возвращает отсортированный по расстоянию список
// пользователей, которые делятся локацией и успели обновить ее в пределах
// окна свежести. excludeUserID с пустым значением отключает исключение -
// так считаются путешественники рядом с местом, а не рядом с человеком.
func (s *proximityService) FindNearbyTravelers(ctx context.Context, reference *models.Coordinate, excludeUserID string, maxDistanceKm float64, maxResults int) []*models.TravelerResult {
	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "FindNearbyTravelers",
	})

	if reference == nil || !reference.Valid() {
		log.Warn("Reference coordinate is absent or invalid, returning empty result")
		return []*models.TravelerResult{}
	}

	cutoff := time.Now().Add(-s.cfg.StalenessCutoff)

	records, err := s.repo.ListSharedSince(ctx, cutoff, s.cfg.FetchBatchSize)
	if err != nil {
		log.WithError(err).Error("Failed to list shared locations from repository")
		return []*models.TravelerResult{}
	}

	travelers := make([]*models.TravelerResult, 0, len(records))
	for _, rec := range records {
		if excludeUserID != "" && rec.UserID == excludeUserID {
			continue
		}

		// Записи без структурно корректной координаты молча отбрасываются
		if rec.Coordinate == nil || !rec.Coordinate.Valid() {
			continue
		}

		// Жесткая граница свежести: проверяется и здесь, а не только в запросе
		if rec.LastLocationUpdate.Before(cutoff) {
			continue
		}

		distance := geo.DistanceKm(reference.Point(), rec.Coordinate.Point())
		if distance > maxDistanceKm {
			continue
		}

		travelers = append(travelers, &models.TravelerResult{
			UserID:             rec.UserID,
			DisplayName:        rec.DisplayName,
			PhotoURL:           rec.PhotoURL,
			Coordinate:         rec.Coordinate,
			DistanceKm:         distance,
			LastActive:         rec.LastActive,
			LastLocationUpdate: rec.LastLocationUpdate,
		})
	}

	// Стабильная сортировка: при равных расстояниях сохраняется порядок выборки
	sort.SliceStable(travelers, func(i, j int) bool {
		return travelers[i].DistanceKm < travelers[j].DistanceKm
	})

	if maxResults > 0 && len(travelers) > maxResults {
		travelers = travelers[:maxResults]
	}

	log.WithField("count", len(travelers)).Debug("Nearby travelers resolved")
	return travelers
}

// TravelerCountNear оценивает, сколько пользователей находится "в" месте,
// переиспользуя резолвер с маленьким радиусом. Возвращает 0 при любой ошибке.
func (s *proximityService) TravelerCountNear(ctx context.Context, place *models.Coordinate, radiusKm float64, viewerID string) int {
	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "TravelerCountNear",
	})

	if place == nil || !place.Valid() {
		log.Warn("Place coordinate is absent or invalid, returning zero count")
		return 0
	}

	if radiusKm <= 0 {
		radiusKm = s.cfg.PlaceCountRadiusKm
	}

	// По умолчанию зритель тоже попадает в счетчик, если физически рядом
	excludeUserID := ""
	if s.cfg.PlaceCountExcludeSelf {
		excludeUserID = viewerID
	}

	// maxResults не меньше размера выборки: считаем, а не сэмплируем
	maxResults := s.cfg.FetchBatchSize
	if maxResults < 100 {
		maxResults = 100
	}

	return len(s.FindNearbyTravelers(ctx, place, excludeUserID, radiusKm, maxResults))
}

// ActiveSharerCount возвращает количество пользователей, которые делятся
// локацией и обновляли ее в пределах окна свежести
func (s *proximityService) ActiveSharerCount(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "ActiveSharerCount",
	})

	cutoff := time.Now().Add(-s.cfg.StalenessCutoff)
	count, err := s.repo.CountSharedSince(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to count shared locations in repository")
		return 0, fmt.Errorf("service: could not count active sharers: %w", err)
	}

	log.WithField("count", count).Info("Active sharer count fetched")
	return count, nil
}
