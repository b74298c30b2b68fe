package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
)

// Статусы ответа провайдера
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// searchResponse повторяет формат ответа провайдера на поиск рядом
type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeRecord `json:"results"`
}

// detailsResponse повторяет формат ответа провайдера на запрос деталей
type detailsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Result       placeRecord `json:"result"`
}

type placeRecord struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Vicinity         string   `json:"vicinity"`
	Website          string   `json:"website"`
	PhoneNumber      string   `json:"formatted_phone_number"`
	BusinessStatus   string   `json:"business_status"`
}

// Client - HTTP клиент внешнего провайдера карт. Ответы на запрос деталей
// кэшируются в Redis, чтобы не дергать провайдера на каждую карточку.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logrus.Logger
}

func NewClient(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.PlacesBaseURL, "/"),
		apiKey:  cfg.PlacesAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.PlacesTimeout,
		},
		redisClient: redisClient,
		cacheTTL:    cfg.PlacesCacheTTL,
		logger:      logger,
	}
}

// SearchNearby запрашивает у провайдера точки интереса вокруг центра.
// Ноль совпадений - пустой список, транспортный сбой или отказ - ошибка.
func (c *Client) SearchNearby(ctx context.Context, center models.Coordinate, radiusMeters int, category string) ([]*models.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Latitude, center.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if category != "" {
		params.Set("type", category)
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var resp searchResponse
	if err := c.get(ctx, "/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return []*models.Place{}, nil
	default:
		return nil, fmt.Errorf("places provider nearbysearch failed with status %s: %s", resp.Status, resp.ErrorMessage)
	}

	places := make([]*models.Place, 0, len(resp.Results))
	for _, rec := range resp.Results {
		places = append(places, recordToPlace(rec))
	}
	return places, nil
}

// GetDetails возвращает детальную карточку места. Неразрешимый идентификатор
// дает nil без ошибки.
func (c *Client) GetDetails(ctx context.Context, placeID string, fields []string) (*models.Place, error) {
	if placeID == "" {
		return nil, nil
	}

	if cached := c.detailsFromCache(ctx, placeID); cached != nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusNotFound, statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("places provider details failed with status %s: %s", resp.Status, resp.ErrorMessage)
	}

	place := recordToPlace(resp.Result)
	c.cacheDetails(ctx, placeID, place)
	return place, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.baseURL == "" {
		return errors.New("places provider base URL is not configured")
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create places provider request: %w", err)
	}
	req.Header.Set("User-Agent", "travlrhub-proximity-service/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places provider returned unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places provider response: %w", err)
	}
	return nil
}

func (c *Client) detailsFromCache(ctx context.Context, placeID string) *models.Place {
	if c.redisClient == nil {
		return nil
	}
	key := fmt.Sprintf("place_details:%s", placeID)
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).Warn("Failed to get place details from cache")
		}
		return nil
	}

	place := &models.Place{}
	if err := json.Unmarshal(val, place); err != nil {
		c.logger.WithError(err).Warn("Failed to unmarshal place details from cache")
		return nil
	}
	return place
}

func (c *Client) cacheDetails(ctx context.Context, placeID string, place *models.Place) {
	if c.redisClient == nil {
		return
	}
	key := fmt.Sprintf("place_details:%s", placeID)
	val, err := json.Marshal(place)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to marshal place details for cache")
		return
	}
	if err := c.redisClient.Set(ctx, key, val, c.cacheTTL).Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to set place details in cache")
	}
}

func recordToPlace(rec placeRecord) *models.Place {
	category := ""
	if len(rec.Types) > 0 {
		category = rec.Types[0]
	}
	return &models.Place{
		PlaceID: rec.PlaceID,
		Name:    rec.Name,
		Coordinate: models.Coordinate{
			Latitude:  rec.Geometry.Location.Lat,
			Longitude: rec.Geometry.Location.Lng,
		},
		Category:     category,
		Address:      rec.Vicinity,
		Rating:       rec.Rating,
		RatingsTotal: rec.UserRatingsTotal,
		Website:      rec.Website,
		PhoneNumber:  rec.PhoneNumber,
		Operational:  rec.BusinessStatus == "" || rec.BusinessStatus == "OPERATIONAL",
	}
}
