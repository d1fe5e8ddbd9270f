package fdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/macrotally/backend/internal/domain"
)

// Client talks to the FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new FoodData Central API client.
func NewClient(apiKey, baseURL string) *Client {
	// FDC allows 1000 requests per hour; 1000/3600 ≈ 0.278 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.278), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MacroTally/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailure, err)
	}

	return resp, nil
}

// searchFood is the raw shape of one search hit.
type searchFood struct {
	FdcID         int           `json:"fdcId"`
	Description   string        `json:"description"`
	DataType      string        `json:"dataType"`
	FoodNutrients []rawNutrient `json:"foodNutrients"`
}

// searchResponse is the raw shape of the search endpoint payload.
type searchResponse struct {
	Foods     []searchFood `json:"foods"`
	TotalHits int          `json:"totalHits"`
}

// SearchFoods searches the food database by query. An empty result list is a
// normal successful outcome, not an error.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]domain.FoodCandidate, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Foundation,SR Legacy,Survey (FNDDS),Branded")
	params.Add("pageSize", "10")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[FDC] search request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[FDC] search error (attempt %d) - status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrLookupFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrLookupFailure, err)
		}

		candidates := make([]domain.FoodCandidate, 0, len(searchResp.Foods))
		for _, food := range searchResp.Foods {
			candidates = append(candidates, domain.FoodCandidate{
				FdcID:           food.FdcID,
				Description:     food.Description,
				DataType:        food.DataType,
				HasNutrientData: len(food.FoodNutrients) > 0,
			})
		}

		log.Printf("[FDC] %d candidates for query %q", len(candidates), query)
		return candidates, nil
	}

	return nil, lastErr
}

// rawDetail is the raw shape of the detail endpoint payload.
type rawDetail struct {
	FdcID           int           `json:"fdcId"`
	Description     string        `json:"description"`
	ServingSize     float64       `json:"servingSize"`
	ServingSizeUnit string        `json:"servingSizeUnit"`
	FoodNutrients   []rawNutrient `json:"foodNutrients"`
}

// GetFoodDetail retrieves the detail record for a specific food.
func (c *Client) GetFoodDetail(ctx context.Context, fdcID int) (*domain.FoodDetail, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/food/%d", c.baseURL, fdcID)
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrLookupFailure, resp.StatusCode, string(body))
	}

	var detail rawDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("%w: decode detail response: %v", domain.ErrLookupFailure, err)
	}

	return &domain.FoodDetail{
		FdcID:           detail.FdcID,
		Description:     detail.Description,
		ServingSize:     detail.ServingSize,
		ServingSizeUnit: detail.ServingSizeUnit,
		Nutrients:       normalizeNutrients(detail.FoodNutrients),
	}, nil
}
