package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/tractionlens/plan-engine/internal/cache"
	"github.com/tractionlens/plan-engine/internal/models"
	"github.com/tractionlens/plan-engine/internal/utils"
)

// ProfileClient wraps the profile service that owns current axis scores.
// Score snapshots are cached with a short TTL because a profile rarely moves
// between consecutive planning calls.
type ProfileClient struct {
	baseURL    string
	scoresPath string
	httpClient *http.Client
	cache      cache.Provider
	scoresTTL  time.Duration
}

// NewProfileClient constructs a client targeting the configured profile service.
func NewProfileClient(baseURL, scoresPath string, timeout time.Duration, provider cache.Provider, scoresTTL time.Duration) *ProfileClient {
	if provider == nil {
		provider = cache.NoopProvider{}
	}
	return &ProfileClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		scoresPath: scoresPath,
		httpClient: &http.Client{Timeout: timeout},
		cache:      provider,
		scoresTTL:  scoresTTL,
	}
}

// FetchCurrentScores returns the latest five-axis snapshot for a profile,
// consulting the cache first.
func (c *ProfileClient) FetchCurrentScores(ctx context.Context, tenantID, profileID string) (models.ScoreMap, error) {
	if c == nil {
		return nil, utils.NewAppError("profile.FetchCurrentScores", "client not initialised", nil)
	}
	if c.baseURL == "" {
		return nil, utils.NewAppError("profile.FetchCurrentScores", "profile service base URL not configured", nil)
	}

	key := scoresCacheKey(tenantID, profileID)
	if cached, err := c.cache.Get(ctx, key); err == nil {
		var scores models.ScoreMap
		if err := json.Unmarshal(cached, &scores); err == nil && len(scores) > 0 {
			return scores, nil
		}
		// Corrupt entry: drop it and fall through to the upstream fetch.
		_ = c.cache.Del(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		// Cache trouble is not fatal; the upstream remains authoritative.
		_ = err
	}

	payload := map[string]any{
		"tenant_id":  tenantID,
		"profile_id": profileID,
	}
	var response struct {
		Scores map[models.Axis]float64 `json:"scores"`
	}
	if err := c.postJSON(ctx, c.scoresURL(), payload, &response); err != nil {
		return nil, utils.NewAppError("profile.FetchCurrentScores", "profile service request failed", err)
	}
	if len(response.Scores) == 0 {
		return nil, utils.NewAppError("profile.FetchCurrentScores", "profile service returned no scores", nil)
	}

	scores := models.ScoreMap(response.Scores)
	if encoded, err := json.Marshal(scores); err == nil {
		_ = c.cache.Set(ctx, key, encoded, c.scoresTTL)
	}
	return scores, nil
}

func scoresCacheKey(tenantID, profileID string) string {
	return fmt.Sprintf("plan-engine:scores:%s:%s", tenantID, profileID)
}

func (c *ProfileClient) scoresURL() string {
	if c.baseURL == "" {
		return ""
	}
	cleaned := "/" + strings.TrimLeft(c.scoresPath, "/")
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + cleaned
	}
	u.Path = path.Join(u.Path, cleaned)
	return u.String()
}

func (c *ProfileClient) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	if endpoint == "" {
		return fmt.Errorf("empty endpoint")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("profile service returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
