package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/neo_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey        = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

const apophisJSON = `{
	"id": "2099942",
	"neo_reference_id": "2099942",
	"name": "99942 Apophis (2004 MN4)",
	"nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=2099942",
	"absolute_magnitude_h": 19.09,
	"estimated_diameter": {
		"meters": {"estimated_diameter_min": 340.0, "estimated_diameter_max": "370.5"}
	},
	"is_potentially_hazardous_asteroid": true,
	"close_approach_data": [
		{
			"close_approach_date": "2029-04-13",
			"epoch_date_close_approach": 1870387200000,
			"relative_velocity": {"kilometers_per_second": "7.42"},
			"miss_distance": {"kilometers": "38012.0"},
			"orbiting_body": "Earth"
		},
		{
			"close_approach_date": "2036-03-27",
			"relative_velocity": {"kilometers_per_second": "5.1"},
			"miss_distance": {"kilometers": "4.5e7"},
			"orbiting_body": "Earth"
		}
	],
	"orbital_data": {"eccentricity": "0.1914", "semi_major_axis": "0.9224", "inclination": "3.3388"}
}`

func testClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Client{
		apiKey:        testAPIKey,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		maxRetries:    2,
		retryInterval: time.Millisecond,
		logger:        logger,
		metrics:       observability.NewMetricsForTesting(),
	}
}

func TestClient_Lookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/2099942", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("api_key"))
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = io.WriteString(w, apophisJSON)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	a, err := c.Lookup(context.Background(), "2099942")

	require.NoError(t, err)
	assert.Equal(t, "2099942", a.NeoID)
	assert.Equal(t, "99942 Apophis (2004 MN4)", a.Name)
	assert.True(t, a.IsPotentiallyHazardous)
	require.NotNil(t, a.DiameterMinM)
	assert.Equal(t, 340.0, *a.DiameterMinM)
	require.NotNil(t, a.DiameterMaxM)
	assert.Equal(t, 370.5, *a.DiameterMaxM)
	require.NotNil(t, a.VelocityKmS)
	assert.Equal(t, 7.42, *a.VelocityKmS)
	require.NotNil(t, a.CloseApproachDate)
	assert.Equal(t, time.Date(2029, 4, 13, 0, 0, 0, 0, time.UTC), *a.CloseApproachDate)
	require.NotNil(t, a.SemiMajorAxisAU)
	assert.Equal(t, 0.9224, *a.SemiMajorAxisAU)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.CatalogRequests.WithLabelValues(endpointLookup, "success")))
}

func TestClient_Lookup_NotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Lookup(context.Background(), "404404")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load(), "404 is not retried")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.CatalogRequests.WithLabelValues(endpointLookup, "not_found")))
}

func TestClient_Lookup_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = io.WriteString(w, apophisJSON)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	a, err := c.Lookup(context.Background(), "2099942")

	require.NoError(t, err)
	assert.Equal(t, "2099942", a.NeoID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Lookup_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, "rate limited")
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Lookup(context.Background(), "2099942")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "rate limited", statusErr.Body)
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestClient_Lookup_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Lookup(context.Background(), "2099942")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Lookup_EmptyID(t *testing.T) {
	c := testClient("http://127.0.0.1:0")

	_, err := c.Lookup(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Feed_SplitsIntoWeeklyWindows(t *testing.T) {
	var windows []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed", r.URL.Path)
		q := r.URL.Query()
		windows = append(windows, q.Get("start_date")+".."+q.Get("end_date"))

		w.Header().Set(headerContentType, contentTypeJSON)
		// Один и тот же объект встречается в обоих окнах
		_, _ = fmt.Fprintf(w, `{"element_count": 1, "near_earth_objects": {%q: [%s]}}`,
			q.Get("start_date"), apophisJSON)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	start := time.Date(2029, 4, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2029, 4, 10, 0, 0, 0, 0, time.UTC)

	asteroids, err := c.Feed(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"2029-04-01..2029-04-07", "2029-04-08..2029-04-10"}, windows)
	require.Len(t, asteroids, 1)
	assert.Equal(t, "2099942", asteroids[0].NeoID)
}

func TestClient_Feed_SkipsFailedWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_date") == "2029-04-01" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = fmt.Fprintf(w, `{"element_count": 1, "near_earth_objects": {"2029-04-09": [%s]}}`, apophisJSON)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	asteroids, err := c.Feed(context.Background(),
		time.Date(2029, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2029, 4, 12, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Len(t, asteroids, 1)
}

func TestClient_Feed_AllWindowsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Feed(context.Background(),
		time.Date(2029, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2029, 4, 3, 0, 0, 0, 0, time.UTC))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestClient_Feed_EndBeforeStart(t *testing.T) {
	c := testClient("http://127.0.0.1:0")

	_, err := c.Feed(context.Background(),
		time.Date(2029, 4, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2029, 4, 1, 0, 0, 0, 0, time.UTC))

	assert.ErrorContains(t, err, "before start")
}

func TestClient_Browse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/browse", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = fmt.Fprintf(w, `{"page": {"size": 20, "number": 2}, "near_earth_objects": [%s]}`, apophisJSON)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	asteroids, err := c.Browse(context.Background(), 2, 20)

	require.NoError(t, err)
	require.Len(t, asteroids, 1)
	assert.Equal(t, "Earth", asteroids[0].OrbitingBody)
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(srv.URL)
	_, err := c.Lookup(ctx, "2099942")

	assert.ErrorIs(t, err, context.Canceled)
}
