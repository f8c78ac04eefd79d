package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/activity-finder/internal/config"
	"github.com/activity-finder/internal/domain"
	"github.com/activity-finder/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// overpassResponse - ответ Overpass API
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassElement - один элемент карты с тегами
type overpassElement struct {
	Type string            `json:"type"`
	ID   *int64            `json:"id"`
	Lat  *float64          `json:"lat"`
	Lon  *float64          `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// NewClient создает новый клиент для Overpass API
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.ActivityRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// SearchByRadius выполняет запрос к Overpass и нормализует элементы в Activity
func (c *client) SearchByRadius(ctx context.Context, query domain.ActivityQuery) ([]domain.Activity, error) {
	if len(query.Categories) == 0 {
		return nil, fmt.Errorf("categories cannot be empty")
	}

	ql := BuildQuery(query)
	reqURL := fmt.Sprintf("%s/api/interpreter?data=%s", c.baseURL, url.QueryEscape(ql))

	c.logger.Debug("Calling Overpass API",
		zap.String("query", ql),
		zap.Strings("categories", query.Categories))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	activities := make([]domain.Activity, 0, len(overpassResp.Elements))
	for i, element := range overpassResp.Elements {
		activities = append(activities, mapElement(element, i))
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)))

	return activities, nil
}

// mapElement нормализует сырой элемент; index подставляется вместо
// отсутствующего идентификатора
func mapElement(element overpassElement, index int) domain.Activity {
	activity := domain.Activity{
		ID:       int64(index),
		Name:     domain.UnnamedPlaceholder,
		Category: domain.InferCategory(element.Tags),
		Lat:      element.Lat,
		Lon:      element.Lon,
	}

	if element.ID != nil {
		activity.ID = *element.ID
	}
	if name, ok := element.Tags["name"]; ok && name != "" {
		activity.Name = name
	}

	return activity
}
