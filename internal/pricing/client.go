package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"estimator/internal"
	"estimator/internal/config"
)

// Client fetches price catalog entries from the rate-schedule API. The feed
// is paged with an opaque scroll id and authenticated with a bearer token.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *rateLimiter
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type entriesPayload struct {
	Entries  []internal.PriceEntry `json:"entries"`
	ScrollID *string               `json:"scrollId"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.PriceAPITimeoutMs) * time.Millisecond},
		limiter:    newRateLimiter(cfg.PriceAPIRateRPS),
	}
}

// GetEntriesAll walks the scroll feed until the server stops returning a
// scroll id or a page comes back empty.
func (c *Client) GetEntriesAll(ctx context.Context) ([]internal.PriceEntry, error) {
	all := make([]internal.PriceEntry, 0)
	seen := map[string]struct{}{}
	var scrollID string

	for {
		query := map[string]string{}
		if scrollID != "" {
			query["scrollId"] = scrollID
		}

		body, err := c.fetchJSON(ctx, "entries/scroll", query)
		if err != nil {
			return nil, err
		}

		var payload entriesPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}

		for _, entry := range payload.Entries {
			entry.Key = strings.ToLower(strings.TrimSpace(entry.Key))
			if entry.Key == "" || entry.UnitPrice < 0 {
				continue
			}
			all = append(all, entry)
		}

		if payload.ScrollID == nil || *payload.ScrollID == "" || len(payload.Entries) == 0 {
			break
		}
		if _, ok := seen[*payload.ScrollID]; ok {
			break
		}
		seen[*payload.ScrollID] = struct{}{}
		scrollID = *payload.ScrollID
	}

	return all, nil
}

func (c *Client) fetchJSON(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	if strings.TrimSpace(c.cfg.PriceAPIToken) == "" {
		return nil, errors.New("missing PRICE_API_TOKEN")
	}

	baseURL := strings.TrimRight(c.cfg.PriceAPIBaseURL, "/") + "/"
	u, err := url.Parse(baseURL + endpoint)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	for k, v := range params {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		c.limiter.waitTurn()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.PriceAPIToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if isRetryableStatus(resp.StatusCode) && attempt < 5 {
				backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
				time.Sleep(backoff)
				lastErr = fmt.Errorf("price api status %d", resp.StatusCode)
				continue
			}
			return nil, fmt.Errorf("price api error: status=%d body=%s", resp.StatusCode, string(body))
		}

		var apiResp apiResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			return nil, err
		}
		if !apiResp.Success {
			return nil, fmt.Errorf("price api unsuccessful: %s", string(apiResp.Errors))
		}
		return apiResp.Data, nil
	}

	if lastErr == nil {
		lastErr = errors.New("price api request failed")
	}
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
