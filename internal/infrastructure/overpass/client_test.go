package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/activity-finder/internal/config"
	"github.com/activity-finder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func overpassConfig(baseURL string) *config.OverpassConfig {
	return &config.OverpassConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_SearchByRadius(t *testing.T) {
	logger := zap.NewNop()

	query := domain.ActivityQuery{
		Lat:        41.3851,
		Lon:        2.1734,
		Radius:     500,
		Categories: []string{"park"},
	}

	t.Run("successful request", func(t *testing.T) {
		var receivedQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedQuery = r.URL.Query().Get("data")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"elements": [
					{"type": "node", "id": 42, "lat": 41.39, "lon": 2.18, "tags": {"leisure": "park"}}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, activities, 1)

		assert.Equal(t, int64(42), activities[0].ID)
		assert.Equal(t, "(unnamed)", activities[0].Name)
		assert.Equal(t, "park", activities[0].Category)
		require.NotNil(t, activities[0].Lat)
		require.NotNil(t, activities[0].Lon)
		assert.Equal(t, 41.39, *activities[0].Lat)
		assert.Equal(t, 2.18, *activities[0].Lon)

		assert.Equal(t, BuildQuery(query), receivedQuery)
	})

	t.Run("name tag is passed through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": [{"type": "node", "id": 7, "lat": 1, "lon": 2, "tags": {"leisure": "playground", "name": "Parc Central"}}]}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "Parc Central", activities[0].Name)
		assert.Equal(t, "playground", activities[0].Category)
	})

	t.Run("missing id falls back to positional index", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": [
				{"type": "node", "id": 100, "lat": 1, "lon": 2, "tags": {"tourism": "zoo"}},
				{"type": "node", "lat": 3, "lon": 4, "tags": {"tourism": "museum"}}
			]}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, int64(100), activities[0].ID)
		assert.Equal(t, int64(1), activities[1].ID)
	})

	t.Run("missing coordinates stay absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": [{"type": "way", "id": 5, "tags": {"leisure": "water_park"}}]}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Nil(t, activities[0].Lat)
		assert.Nil(t, activities[0].Lon)
		assert.Equal(t, "water_park", activities[0].Category)
	})

	t.Run("unmatched tags map to unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": [{"type": "node", "id": 9, "lat": 1, "lon": 2, "tags": {"amenity": "casino"}}]}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "unknown", activities[0].Category)
	})

	t.Run("empty categories", func(t *testing.T) {
		client := NewClient(overpassConfig("http://localhost"), logger)

		q := query
		q.Categories = nil

		activities, err := client.SearchByRadius(context.Background(), q)
		assert.Error(t, err)
		assert.Nil(t, activities)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("rate limited"))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		assert.Error(t, err)
		assert.Nil(t, activities)
		assert.Contains(t, err.Error(), "overpass API error")
	})

	t.Run("malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		assert.Error(t, err)
		assert.Nil(t, activities)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("empty result list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": []}`))
		}))
		defer server.Close()

		client := NewClient(overpassConfig(server.URL), logger)

		activities, err := client.SearchByRadius(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, activities)
	})
}
