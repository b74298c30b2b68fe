package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/service"
)

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SaveFix сохраняет измерение координат пользователя. Координата, флаг
// шеринга и серверная отметка времени пишутся одним запросом: запись
// координаты всегда означает включенный шеринг.
func (r *LocationRepository) SaveFix(ctx context.Context, userID string, coord models.Coordinate) error {
	query := `
		INSERT INTO user_locations (user_id, latitude, longitude, share_location, last_location_update, last_active)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			share_location = TRUE,
			last_location_update = NOW(),
			last_active = NOW(),
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, userID, coord.Latitude, coord.Longitude); err != nil {
		return fmt.Errorf("failed to save location fix: %w", err)
	}
	return nil
}

// SetSharing переключает настройку шеринга. При отключении координата и
// отметка времени очищаются в том же запросе.
func (r *LocationRepository) SetSharing(ctx context.Context, userID string, enabled bool) error {
	var query string
	if enabled {
		query = `
			INSERT INTO user_locations (user_id, share_location, last_active)
			VALUES ($1, TRUE, NOW())
			ON CONFLICT (user_id) DO UPDATE SET
				share_location = TRUE,
				last_active = NOW(),
				updated_at = NOW();
		`
	} else {
		query = `
			INSERT INTO user_locations (user_id, share_location, last_active)
			VALUES ($1, FALSE, NOW())
			ON CONFLICT (user_id) DO UPDATE SET
				share_location = FALSE,
				latitude = NULL,
				longitude = NULL,
				last_location_update = NULL,
				last_active = NOW(),
				updated_at = NOW();
		`
	}
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to set sharing preference: %w", err)
	}
	return nil
}

// GetByID возвращает запись о местоположении пользователя
func (r *LocationRepository) GetByID(ctx context.Context, userID string) (*models.UserLocation, error) {
	query := `
		SELECT
			user_id,
			display_name,
			photo_url,
			latitude,
			longitude,
			share_location,
			last_location_update,
			last_active
		FROM user_locations
		WHERE user_id = $1;
	`
	user, err := scanUserLocation(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get user location by id: %w", err)
	}
	return user, nil
}

// ListSharedSince возвращает записи пользователей с включенным шерингом,
// обновивших координату после since, новые сверху, не больше limit строк.
// Дальнейшая фильтрация по расстоянию делается на стороне сервиса.
func (r *LocationRepository) ListSharedSince(ctx context.Context, since time.Time, limit int) ([]*models.UserLocation, error) {
	query := `
		SELECT
			user_id,
			display_name,
			photo_url,
			latitude,
			longitude,
			share_location,
			last_location_update,
			last_active
		FROM user_locations
		WHERE
			share_location = TRUE
			AND last_location_update IS NOT NULL
			AND last_location_update > $1
		ORDER BY last_location_update DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared locations: %w", err)
	}
	defer rows.Close()

	users := make([]*models.UserLocation, 0)
	for rows.Next() {
		user, err := scanUserLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user location row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListSharedSince: %w", err)
	}
	return users, nil
}

// CountSharedSince возвращает количество пользователей с включенным шерингом
// и свежей координатой
func (r *LocationRepository) CountSharedSince(ctx context.Context, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_locations
		WHERE
			share_location = TRUE
			AND last_location_update IS NOT NULL
			AND last_location_update > $1;
	`
	var count int
	err := r.db.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count shared locations: %w", err)
	}
	return count, nil
}

// GetUserFromCache пытается получить запись пользователя из Redis
func (r *LocationRepository) GetUserFromCache(ctx context.Context, userID string) (*models.UserLocation, error) {
	key := fmt.Sprintf("user_location:%s", userID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user location from cache: %w", err)
	}

	user := &models.UserLocation{}
	if err := json.Unmarshal(val, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user location from cache: %w", err)
	}
	return user, nil
}

// SetUserCache сохраняет запись пользователя в Redis
func (r *LocationRepository) SetUserCache(ctx context.Context, user *models.UserLocation) error {
	key := fmt.Sprintf("user_location:%s", user.UserID)
	val, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user location for cache: %w", err)
	}
	// Короткий срок жизни: запись о местоположении быстро устаревает
	if err := r.redisClient.Set(ctx, key, val, time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set user location in cache: %w", err)
	}
	return nil
}

// InvalidateUserCache удаляет запись пользователя из Redis кэша
func (r *LocationRepository) InvalidateUserCache(ctx context.Context, userID string) error {
	key := fmt.Sprintf("user_location:%s", userID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user location cache: %w", err)
	}
	return nil
}

// scanUserLocation читает строку user_locations; широта/долгота и отметки
// времени допускают NULL
func scanUserLocation(row pgx.Row) (*models.UserLocation, error) {
	user := &models.UserLocation{}
	var (
		lat, lon   *float64
		lastUpdate *time.Time
		lastActive *time.Time
	)
	err := row.Scan(
		&user.UserID,
		&user.DisplayName,
		&user.PhotoURL,
		&lat,
		&lon,
		&user.ShareLocation,
		&lastUpdate,
		&lastActive,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		user.Coordinate = &models.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	if lastUpdate != nil {
		user.LastLocationUpdate = *lastUpdate
	}
	if lastActive != nil {
		user.LastActive = *lastActive
	}
	return user, nil
}
