package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config, clock clockwork.Clock) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewAlertWorker(nil, logger, cfg, observability.NewMetricsForTesting(), clock)
}

func testAlert(t *testing.T) (ImpactAlert, []byte) {
	alert := ImpactAlert{
		EventID:     "c6f1d1c4-4b0b-4f5e-9a4b-1d2d3e4f5a6b",
		NeoID:       "2099942",
		Name:        "99942 Apophis (2004 MN4)",
		TorinoScale: 8,
		ThreatLevel: "Severe",
		Timestamp:   time.Date(2029, 4, 13, 0, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(alert)
	require.NoError(t, err)
	return alert, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	// Подготовка
	alert, payload := testAlert(t)
	var gotBody []byte
	var gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(signatureHeader)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, clockwork.NewRealClock())

	// Действие
	err := w.deliver(context.Background(), alert, payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, Sign(payload, "s3cret"), gotSignature)
	assert.Equal(t, 1.0, testutil.ToFloat64(w.metrics.AlertDeliveries.WithLabelValues("delivered")))
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	alert, payload := testAlert(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(signatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
	}, clockwork.NewRealClock())

	require.NoError(t, w.deliver(context.Background(), alert, payload))
}

func TestDeliver_RetriesWithExponentialDelay(t *testing.T) {
	// Подготовка
	alert, payload := testAlert(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	}, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Действие
	result := make(chan error, 1)
	go func() {
		result <- w.deliver(ctx, alert, payload)
	}()

	// Первая пауза 1с, вторая 2с
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(2 * time.Second)

	// Проверки
	err := <-result
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(w.metrics.AlertDeliveries.WithLabelValues("failed")))
}

func TestDeliver_RecoversAfterFailure(t *testing.T) {
	alert, payload := testAlert(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, clockwork.NewRealClock())

	require.NoError(t, w.deliver(context.Background(), alert, payload))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	alert, payload := testAlert(t)
	w := newTestWorker(&config.Config{}, clockwork.NewRealClock())

	err := w.deliver(context.Background(), alert, payload)

	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(w.metrics.AlertDeliveries.WithLabelValues("skipped")))
}

func TestDeliver_StopsOnCancelledContext(t *testing.T) {
	alert, payload := testAlert(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	}, clockwork.NewRealClock())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	err := w.deliver(ctx, alert, payload)

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSign(t *testing.T) {
	// HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog")
	got := Sign([]byte("The quick brown fox jumps over the lazy dog"), "key")
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}
