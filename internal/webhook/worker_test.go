package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travlrhub/proximity_service/internal/config"
)

func newTestWorker(cfg *config.Config) *DeliveryWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewDeliveryWorker(nil, logger, cfg)
}

func marshalEvent(t *testing.T, event LocationEvent) string {
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return string(payload)
}

func TestProcessEvent_DeliversWithSignature(t *testing.T) {
	// Подготовка
	var delivered atomic.Bool
	var receivedSignature string
	var receivedBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedSignature = r.Header.Get("X-Webhook-Signature")
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		receivedBody = buf.Bytes()
		delivered.Store(true)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker := newTestWorker(cfg)

	lat, lon := 55.75, 37.61
	event := LocationEvent{
		EventID:   uuid.New(),
		UserID:    "user-123",
		Latitude:  &lat,
		Longitude: &lon,
		Sharing:   true,
		Timestamp: time.Now().UTC(),
	}
	payload := marshalEvent(t, event)

	// Действие
	worker.processEvent(context.Background(), event, payload)

	// Проверки
	require.True(t, delivered.Load())
	assert.Equal(t, payload, string(receivedBody))

	h := hmac.New(sha256.New, []byte("test-secret"))
	h.Write([]byte(payload))
	assert.Equal(t, hex.EncodeToString(h.Sum(nil)), receivedSignature)
}

func TestProcessEvent_RetriesOnFailure(t *testing.T) {
	// Подготовка: первые две попытки отклоняются, третья проходит
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event := LocationEvent{EventID: uuid.New(), UserID: "user-123"}

	// Действие
	worker.processEvent(context.Background(), event, marshalEvent(t, event))

	// Проверки
	assert.Equal(t, int32(3), attempts.Load())
}

func TestProcessEvent_SkipsWithoutURL(t *testing.T) {
	// Подготовка: URL не настроен - доставка молча пропускается
	cfg := &config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event := LocationEvent{EventID: uuid.New(), UserID: "user-123"}

	// Действие и проверки: не паникует и не зависает
	worker.processEvent(context.Background(), event, marshalEvent(t, event))
}
