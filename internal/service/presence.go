package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/webhook"
)

//go:generate mockgen -source=presence.go -destination=mocks/mock_presence.go -package=mocks

// PresenceService определяет контракт для приема координат устройства
// и управления настройкой шеринга
type PresenceService interface {
	ReportLocation(ctx context.Context, userID string, coord models.Coordinate) error
	SetSharing(ctx context.Context, userID string, enabled bool) error
	GetUser(ctx context.Context, userID string) (*models.UserLocation, error)
}

type presenceService struct {
	repo      LocationRepository
	logger    *logrus.Logger
	publisher webhook.EventPublisher
}

func NewPresenceService(repo LocationRepository, logger *logrus.Logger, publisher webhook.EventPublisher) PresenceService {
	return &presenceService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// ReportLocation сохраняет очередное измерение координат пользователя.
// Координата и флаг шеринга записываются одним атомарным обновлением:
// сам факт удаленной записи означает, что пользователь делится локацией,
// поэтому флаг и координата никогда не расходятся.
func (s *presenceService) ReportLocation(ctx context.Context, userID string, coord models.Coordinate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "ReportLocation",
		"user_id": userID,
	})

	if userID == "" {
		return fmt.Errorf("service: user id is required")
	}
	if !coord.Valid() {
		return fmt.Errorf("service: coordinate out of range: lat=%f lon=%f", coord.Latitude, coord.Longitude)
	}

	if err := s.repo.SaveFix(ctx, userID, coord); err != nil {
		log.WithError(err).Error("Failed to save location fix in repository")
		return fmt.Errorf("service: could not save location fix: %w", err)
	}

	if err := s.repo.InvalidateUserCache(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate user cache")
	}

	s.publishEvent(ctx, log, webhook.LocationEvent{
		EventID:   uuid.New(),
		UserID:    userID,
		Latitude:  &coord.Latitude,
		Longitude: &coord.Longitude,
		Sharing:   true,
		Timestamp: time.Now().UTC(),
	})

	log.Debug("Location fix saved")
	return nil
}

// SetSharing переключает настройку шеринга. Отключение очищает сохраненную
// координату в том же обновлении - состояние "флаг выключен, координата
// осталась" становится непредставимым.
func (s *presenceService) SetSharing(ctx context.Context, userID string, enabled bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "SetSharing",
		"user_id": userID,
		"enabled": enabled,
	})

	if userID == "" {
		return fmt.Errorf("service: user id is required")
	}

	if err := s.repo.SetSharing(ctx, userID, enabled); err != nil {
		log.WithError(err).Error("Failed to set sharing preference in repository")
		return fmt.Errorf("service: could not set sharing preference: %w", err)
	}

	if err := s.repo.InvalidateUserCache(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate user cache")
	}

	s.publishEvent(ctx, log, webhook.LocationEvent{
		EventID:   uuid.New(),
		UserID:    userID,
		Sharing:   enabled,
		Timestamp: time.Now().UTC(),
	})

	log.Info("Sharing preference updated")
	return nil
}

// GetUser возвращает запись о местоположении пользователя, сначала из кеша
func (s *presenceService) GetUser(ctx context.Context, userID string) (*models.UserLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "GetUser",
		"user_id": userID,
	})

	cached, err := s.repo.GetUserFromCache(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to read user from cache")
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := s.repo.SetUserCache(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to set user cache")
	}
	return user, nil
}

// publishEvent отправляет событие в очередь; доставка - fire-and-forget,
// сбой публикации не влияет на результат операции
func (s *presenceService) publishEvent(ctx context.Context, log *logrus.Entry, event webhook.LocationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish location event")
	}
}
