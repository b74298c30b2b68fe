package places

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
)

// newTestClient — вспомогательная функция для создания клиента поверх тестового сервера.
func newTestClient(serverURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PlacesBaseURL: serverURL,
		PlacesAPIKey:  "test-key",
		PlacesTimeout: time.Second,
	}
	return NewClient(cfg, nil, logger)
}

func TestSearchNearby_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "1500", r.URL.Query().Get("radius"))
		assert.Equal(t, "cafe", r.URL.Query().Get("type"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "place-1",
					"name": "Кафе у башни",
					"geometry": {"location": {"lat": 48.8584, "lng": 2.2945}},
					"types": ["cafe", "food"],
					"rating": 4.5,
					"user_ratings_total": 120,
					"vicinity": "5 Avenue Anatole France",
					"business_status": "OPERATIONAL"
				},
				{
					"place_id": "place-2",
					"name": "Закрытое кафе",
					"geometry": {"location": {"lat": 48.8585, "lng": 2.2946}},
					"types": ["cafe"],
					"business_status": "CLOSED_PERMANENTLY"
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	places, err := client.SearchNearby(context.Background(), models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}, 1500, "cafe")

	// Проверки
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "place-1", places[0].PlaceID)
	assert.Equal(t, "Кафе у башни", places[0].Name)
	assert.Equal(t, "cafe", places[0].Category)
	assert.Equal(t, 4.5, places[0].Rating)
	assert.Equal(t, 120, places[0].RatingsTotal)
	assert.True(t, places[0].Operational)
	assert.False(t, places[1].Operational)
}

func TestSearchNearby_ZeroResults(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	places, err := client.SearchNearby(context.Background(), models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}, 1500, "")

	// Проверки: ноль совпадений - пустой список, а не ошибка
	require.NoError(t, err)
	require.NotNil(t, places)
	assert.Empty(t, places)
}

func TestSearchNearby_ProviderDenied(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	places, err := client.SearchNearby(context.Background(), models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}, 1500, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorContains(t, err, "REQUEST_DENIED")
}

func TestSearchNearby_TransportError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	places, err := client.SearchNearby(context.Background(), models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}, 1500, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestGetDetails_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "place-1", r.URL.Query().Get("place_id"))
		assert.NotEmpty(t, r.URL.Query().Get("fields"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "place-1",
				"name": "Кафе у башни",
				"geometry": {"location": {"lat": 48.8584, "lng": 2.2945}},
				"types": ["cafe"],
				"website": "https://example.com",
				"formatted_phone_number": "+33 1 23 45 67 89"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	place, err := client.GetDetails(context.Background(), "place-1", []string{"place_id", "name", "geometry"})

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "place-1", place.PlaceID)
	assert.Equal(t, "https://example.com", place.Website)
	assert.Equal(t, "+33 1 23 45 67 89", place.PhoneNumber)
	assert.Equal(t, 48.8584, place.Coordinate.Latitude)
}

func TestGetDetails_NotFound(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "NOT_FOUND"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	place, err := client.GetDetails(context.Background(), "unknown", nil)

	// Проверки: неразрешимый идентификатор - nil без ошибки
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestGetDetails_EmptyID(t *testing.T) {
	// Подготовка: сервер не должен быть вызван
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for empty place id")
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	place, err := client.GetDetails(context.Background(), "", nil)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, place)
}
