package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/tracker"
	"github.com/travlrhub/proximity_service/pkg/logger"
)

// apiClient - клиент HTTP API сервиса для трекера и поллера
type apiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// PublishFix отправляет измерение координат в сервис
func (c *apiClient) PublishFix(ctx context.Context, userID string, coord models.Coordinate) error {
	payload, err := json.Marshal(map[string]any{
		"user_id":   userID,
		"latitude":  coord.Latitude,
		"longitude": coord.Longitude,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal location fix: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/location", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create fix request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send location fix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("location fix rejected with status %d", resp.StatusCode)
	}
	return nil
}

// fetchNearby перечитывает список попутчиков вокруг опорной точки
func (c *apiClient) fetchNearby(ctx context.Context, reference models.Coordinate, excludeUserID string, radiusKm float64) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(reference.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(reference.Longitude, 'f', -1, 64))
	params.Set("radius_km", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	params.Set("exclude_user_id", excludeUserID)

	reqURL := fmt.Sprintf("%s/api/v1/travelers/nearby?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		c.logger.WithError(err).Error("Failed to create nearby request")
		return
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to fetch nearby travelers")
		return
	}
	defer resp.Body.Close()

	var travelers []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&travelers); err != nil {
		c.logger.WithError(err).Warn("Failed to decode nearby travelers response")
		return
	}

	c.logger.WithField("count", len(travelers)).Info("Nearby travelers refreshed")
	for _, t := range travelers {
		c.logger.WithFields(logrus.Fields{
			"user_id":  t["user_id"],
			"distance": t["distance"],
		}).Debug("Nearby traveler")
	}
}

func main() {
	// Загрузка переменных окружения из .env файла (если есть)
	_ = godotenv.Load()

	log := logger.New(getEnv("LOG_LEVEL", "info"))

	userID := os.Getenv("AGENT_USER_ID")
	if userID == "" {
		log.Fatal("AGENT_USER_ID environment variable is required")
	}

	share, _ := strconv.ParseBool(getEnv("AGENT_SHARE_LOCATION", "false"))
	radiusKm, _ := strconv.ParseFloat(getEnv("AGENT_NEARBY_RADIUS_KM", "10"), 64)

	pollInterval, err := time.ParseDuration(getEnv("AGENT_POLL_INTERVAL", "30s"))
	if err != nil {
		pollInterval = 30 * time.Second
	}
	fixTimeout, err := time.ParseDuration(getEnv("AGENT_FIX_TIMEOUT", "20s"))
	if err != nil {
		fixTimeout = 20 * time.Second
	}
	fixMaxAge, err := time.ParseDuration(getEnv("AGENT_FIX_MAX_AGE", "10s"))
	if err != nil {
		fixMaxAge = 10 * time.Second
	}

	client := &apiClient{
		baseURL:    getEnv("AGENT_API_URL", "http://localhost:8080"),
		apiKey:     os.Getenv("AGENT_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Режим выбирается один раз при запуске: чтобы поменять настройку шеринга,
	// агент перезапускается с другим значением AGENT_SHARE_LOCATION
	mode := tracker.ModeNotSharing
	if share {
		mode = tracker.ModeSharing
	}

	// Измерения приходят JSON-строками на stdin
	source := tracker.NewStreamSource(os.Stdin)
	tr := tracker.New(userID, mode, source, client, log, tracker.WatchOptions{
		HighAccuracy: true,
		Timeout:      fixTimeout,
		MaximumAge:   fixMaxAge,
	})

	poller := tracker.NewPoller(pollInterval, func(ctx context.Context, reference models.Coordinate) {
		client.fetchNearby(ctx, reference, userID, radiusKm)
	}, log)
	defer poller.Stop()

	// Перевооружаем поллер при смене опорной точки
	go func() {
		var current *models.Coordinate
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				state := tr.State()
				if state.Coordinate == nil {
					continue
				}
				if current == nil || *current != *state.Coordinate {
					coord := *state.Coordinate
					current = &coord
					poller.SetReference(ctx, coord)
				}
			}
		}
	}()

	err = tr.Run(ctx)
	switch {
	case errors.Is(err, tracker.ErrPermissionDenied):
		log.Error("Location permission denied. Please enable it in your device settings.")
		os.Exit(1)
	case err != nil && !errors.Is(err, context.Canceled):
		log.WithError(err).Fatal("Tracker stopped with error")
	}

	log.Info("Agent stopped")
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
