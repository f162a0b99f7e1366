package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const nutritionCacheTTL = 6 * time.Hour

// Food is one candidate dish returned by the nutrition-search API.
type Food struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Iron     float64 `json:"iron,omitempty"`
}

// NutrientFilters constrains a dish search to nutrient ranges.
type NutrientFilters struct {
	CaloriesMin float64 `json:"calories_min"`
	CaloriesMax float64 `json:"calories_max"`
	ProteinMin  float64 `json:"protein_min"`
	ProteinMax  float64 `json:"protein_max"`
	CarbsMin    float64 `json:"carbs_min"`
	CarbsMax    float64 `json:"carbs_max"`
	FatMin      float64 `json:"fat_min"`
	FatMax      float64 `json:"fat_max"`
	IronMin     float64 `json:"iron_min,omitempty"`
}

// searchRequest is the request body for the nutrition-search API.
type searchRequest struct {
	Query   string          `json:"query"`
	Filters NutrientFilters `json:"filters"`
}

// searchResponse is the response body from the nutrition-search API.
type searchResponse struct {
	Foods []Food `json:"foods"`
}

// NutritionService queries the external nutrition-search API and caches
// responses in Redis so plan regenerations don't re-hit the API.
type NutritionService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewNutritionService creates a new NutritionService instance. The Redis
// client may be nil, in which case caching is disabled.
func NewNutritionService(redisClient *redis.Client) (*NutritionService, error) {
	apiKey := os.Getenv("NUTRITION_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("NUTRITION_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("NUTRITION_API_KEY or NUTRITION_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("NUTRITION_API_URL")
	if apiURL == "" {
		apiURL = "https://api.nutrisearch.io/v2/foods/search"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("NUTRITION_API_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	return &NutritionService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
		redis:  redisClient,
	}, nil
}

// SearchDishes queries the nutrition-search API for dishes matching the
// query and nutrient filters. An empty slice with a nil error means the
// API answered but had no match.
func (s *NutritionService) SearchDishes(ctx context.Context, query string, filters NutrientFilters) ([]Food, error) {
	reqBody := searchRequest{Query: query, Filters: filters}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	cacheKey := fmt.Sprintf("nutrition:search:%x", sha256.Sum256(jsonData))
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []Food
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(string(jsonData)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(result.Foods); err == nil {
			// cache failures are not worth failing the search over
			_ = s.redis.Set(ctx, cacheKey, data, nutritionCacheTTL).Err()
		}
	}

	return result.Foods, nil
}
