// Package catalog - клиент каталога околоземных объектов (NASA NeoWs).
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shenikar/neo_risk_system/internal/config"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// ErrNotFound - объект отсутствует в каталоге
var ErrNotFound = errors.New("catalog: asteroid not found")

const (
	endpointLookup = "lookup"
	endpointFeed   = "feed"
	endpointBrowse = "browse"

	// NeoWs отдает ленту не более чем за 7 дней за запрос
	feedWindowDays = 7

	defaultRetryInterval = 500 * time.Millisecond
	maxErrorBodyBytes    = 512
)

// StatusError - неуспешный HTTP-ответ каталога
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog API error: status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Client - HTTP-клиент NeoWs с повторами и метриками
type Client struct {
	apiKey        string
	baseURL       string
	httpClient    *http.Client
	maxRetries    int
	retryInterval time.Duration
	logger        *logrus.Logger
	metrics       *observability.Metrics
}

// NewClient создает клиента каталога
func NewClient(cfg *config.Config, logger *logrus.Logger, metrics *observability.Metrics) *Client {
	maxRetries := cfg.NeoAPIMaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		apiKey:  cfg.NeoAPIKey,
		baseURL: strings.TrimRight(cfg.NeoAPIURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.NeoAPITimeout,
		},
		maxRetries:    maxRetries,
		retryInterval: defaultRetryInterval,
		logger:        logger,
		metrics:       metrics,
	}
}

// Lookup возвращает объект каталога по его идентификатору
func (c *Client) Lookup(ctx context.Context, neoID string) (*models.Asteroid, error) {
	if strings.TrimSpace(neoID) == "" {
		return nil, fmt.Errorf("catalog: empty neo id: %w", ErrNotFound)
	}

	var neo neoObject
	if err := c.getJSON(ctx, endpointLookup, "/neo/"+url.PathEscape(neoID), nil, &neo); err != nil {
		return nil, fmt.Errorf("catalog: lookup %s: %w", neoID, err)
	}
	return toModel(neo), nil
}

// Feed возвращает объекты со сближениями в интервале дат [start, end].
// Интервал разбивается на окна по 7 дней. Неудачное окно пропускается,
// ошибка возвращается только если не удалось получить ни одно окно.
func (c *Client) Feed(ctx context.Context, start, end time.Time) ([]*models.Asteroid, error) {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("catalog: feed end %s is before start %s",
			end.Format(approachDateLayout), start.Format(approachDateLayout))
	}

	log := c.logger.WithFields(logrus.Fields{
		"service": "CatalogClient",
		"method":  "Feed",
	})

	var (
		asteroids []*models.Asteroid
		seen      = make(map[string]struct{})
		windows   int
		failed    int
		lastErr   error
	)
	for windowStart := start; !windowStart.After(end); windowStart = windowStart.AddDate(0, 0, feedWindowDays) {
		windowEnd := windowStart.AddDate(0, 0, feedWindowDays-1)
		if windowEnd.After(end) {
			windowEnd = end
		}
		windows++

		batch, err := c.feedWindow(ctx, windowStart, windowEnd)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("catalog: feed: %w", ctxErr)
			}
			failed++
			lastErr = err
			log.WithError(err).WithFields(logrus.Fields{
				"window_start": windowStart.Format(approachDateLayout),
				"window_end":   windowEnd.Format(approachDateLayout),
			}).Warn("Skipping failed feed window")
			continue
		}

		for _, a := range batch {
			if _, dup := seen[a.NeoID]; dup {
				continue
			}
			seen[a.NeoID] = struct{}{}
			asteroids = append(asteroids, a)
		}
	}

	if failed == windows {
		return nil, fmt.Errorf("catalog: all %d feed windows failed: %w", windows, lastErr)
	}
	return asteroids, nil
}

func (c *Client) feedWindow(ctx context.Context, start, end time.Time) ([]*models.Asteroid, error) {
	params := url.Values{
		"start_date": {start.Format(approachDateLayout)},
		"end_date":   {end.Format(approachDateLayout)},
	}

	var resp feedResponse
	if err := c.getJSON(ctx, endpointFeed, "/feed", params, &resp); err != nil {
		return nil, err
	}

	// Порядок дат в ответе не гарантирован
	dates := make([]string, 0, len(resp.NearEarthObjects))
	for date := range resp.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	asteroids := make([]*models.Asteroid, 0, resp.ElementCount)
	for _, date := range dates {
		for _, neo := range resp.NearEarthObjects[date] {
			asteroids = append(asteroids, toModel(neo))
		}
	}
	return asteroids, nil
}

// Browse возвращает страницу полного каталога (нумерация страниц с нуля)
func (c *Client) Browse(ctx context.Context, page, size int) ([]*models.Asteroid, error) {
	params := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}

	var resp browseResponse
	if err := c.getJSON(ctx, endpointBrowse, "/neo/browse", params, &resp); err != nil {
		return nil, fmt.Errorf("catalog: browse page %d: %w", page, err)
	}

	asteroids := make([]*models.Asteroid, 0, len(resp.NearEarthObjects))
	for _, neo := range resp.NearEarthObjects {
		asteroids = append(asteroids, toModel(neo))
	}
	return asteroids, nil
}

// getJSON выполняет GET-запрос с повторами при сетевых ошибках, 429 и 5xx
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	log := c.logger.WithFields(logrus.Fields{
		"service":  "CatalogClient",
		"endpoint": endpoint,
	})

	started := time.Now()
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s request: %w", endpoint, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrNotFound)
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
			if statusErr.retryable() {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s response: %w", endpoint, err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)
	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		log.WithError(err).Warnf("Catalog request failed, retrying in %v", wait)
	})

	c.metrics.CatalogDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
	switch {
	case err == nil:
		c.metrics.CatalogRequests.WithLabelValues(endpoint, "success").Inc()
	case errors.Is(err, ErrNotFound):
		c.metrics.CatalogRequests.WithLabelValues(endpoint, "not_found").Inc()
	default:
		c.metrics.CatalogRequests.WithLabelValues(endpoint, "error").Inc()
	}
	return err
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval
	b.MaxElapsedTime = 0
	return b
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
