package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popTimeout      = 5 * time.Second
)

// ErrDeliveryFailed - оповещение не доставлено после всех попыток
var ErrDeliveryFailed = errors.New("webhook: delivery failed")

// AlertWorker забирает оповещения из очереди и отправляет их на WEBHOOK_URL
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	clock       clockwork.Clock
	metrics     *observability.Metrics
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics, clock clockwork.Clock) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		clock:   clock,
		metrics: metrics,
	}
}

// Start запускает обработку очереди в отдельной горутине.
// Возвращаемый канал закрывается после остановки воркера.
func (w *AlertWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting impact alert worker...")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping impact alert worker.")
				return
			}

			// Ожидание ограничено, чтобы регулярно проверять отмену контекста
			result, err := w.redisClient.BRPop(ctx, popTimeout, alertQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop impact alert from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := []byte(result[1])
			var alert ImpactAlert
			if err := json.Unmarshal(payload, &alert); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal impact alert from Redis")
				continue
			}

			_ = w.deliver(ctx, alert, payload)
		}
	}()

	return done
}

// deliver отправляет оповещение с экспоненциальной задержкой между попытками
func (w *AlertWorker) deliver(ctx context.Context, alert ImpactAlert, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":     alert.EventID,
		"neo_id":       alert.NeoID,
		"torino_scale": alert.TorinoScale,
	})
	log.Debug("Processing impact alert...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		w.metrics.AlertDeliveries.WithLabelValues("skipped").Inc()
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := w.send(ctx, payload)
		if err == nil {
			log.Info("Impact alert delivered successfully.")
			w.metrics.AlertDeliveries.WithLabelValues("delivered").Inc()
			return nil
		}

		if attempt == maxRetries {
			log.WithError(err).Errorf("Failed to deliver impact alert after %d attempts.", maxRetries)
			break
		}
		log.WithError(err).Warnf("Impact alert delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-attempt)
		if !w.sleep(ctx, delay) {
			break
		}
		delay *= 2
	}

	w.metrics.AlertDeliveries.WithLabelValues("failed").Inc()
	return ErrDeliveryFailed
}

func (w *AlertWorker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

// sleep ждет d по часам воркера. Возвращает false, если контекст отменен.
func (w *AlertWorker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-w.clock.After(d):
		return true
	}
}

// Sign генерирует HMAC-SHA256 подпись тела запроса
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
