// internal/assistant/search/http.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"police-assistant/internal/common/config"
	stderrors "police-assistant/internal/common/errors"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/common/metrics"
	"police-assistant/internal/models"
)

// HTTPProvider queries a Custom Search style JSON endpoint with retries,
// exponential backoff, and a consecutive-failure circuit breaker. While
// the breaker is open every call fails fast and the composer degrades to
// template-only responses.
type HTTPProvider struct {
	cfg    config.SearchConfig
	client *http.Client
	log    logger.Logger

	mu        sync.Mutex
	failures  int
	openUntil time.Time
}

func NewHTTPProvider(cfg config.SearchConfig, log logger.Logger) *HTTPProvider {
	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: config.GetDuration(cfg.Timeout)},
		log:    log.WithFields(map[string]interface{}{"component": "search-http"}),
	}
}

func (p *HTTPProvider) Search(ctx context.Context, query string, lang models.Language) ([]models.SearchResult, error) {
	if until, open := p.breakerOpen(); open {
		metrics.SearchRequests.WithLabelValues("http", "breaker_open").Inc()
		return nil, stderrors.NewSearchUnavailableError(until)
	}

	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<uint(attempt-1))) * time.Millisecond
			p.log.Warn("search attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
				"error":   lastErr.Error(),
			})
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				p.recordFailure()
				return nil, stderrors.NewSearchTimeoutError(ctx.Err().Error())
			case <-timer.C:
			}
		}

		results, err := p.fetch(ctx, query, lang)
		if err == nil {
			p.recordSuccess()
			metrics.SearchRequests.WithLabelValues("http", "success").Inc()
			return results, nil
		}
		lastErr = err
	}

	p.recordFailure()
	metrics.SearchRequests.WithLabelValues("http", "failure").Inc()
	return nil, lastErr
}

func (p *HTTPProvider) fetch(ctx context.Context, query string, lang models.Language) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", p.cfg.APIKey)
	params.Set("cx", p.cfg.EngineID)
	params.Set("num", fmt.Sprintf("%d", p.cfg.MaxResults))
	params.Set("hl", string(lang))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, stderrors.NewSearchFailedError(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, stderrors.NewSearchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stderrors.NewSearchFailedError(fmt.Errorf("search endpoint returned status %d", resp.StatusCode))
	}

	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, stderrors.NewSearchFailedError(err)
	}

	results := make([]models.SearchResult, 0, len(payload.Items))
	for i, item := range payload.Items {
		if i == p.cfg.MaxResults {
			break
		}
		results = append(results, models.SearchResult{
			Title:     item.Title,
			Snippet:   item.Snippet,
			URL:       item.Link,
			Relevance: rankRelevance(i),
		})
	}
	return results, nil
}

// rankRelevance scores by result position; the endpoint already ranks.
func rankRelevance(position int) float64 {
	score := 0.9 - 0.1*float64(position)
	if score < 0.1 {
		score = 0.1
	}
	return score
}

func (p *HTTPProvider) breakerOpen() (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.openUntil, time.Now().Before(p.openUntil)
}

func (p *HTTPProvider) recordSuccess() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = 0
}

func (p *HTTPProvider) recordFailure() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures++
	if p.failures >= p.cfg.BreakerThreshold {
		p.openUntil = time.Now().Add(config.GetDuration(p.cfg.BreakerCooldown))
		p.failures = 0
		p.log.Error("search circuit breaker opened", map[string]interface{}{
			"cooldown_until": p.openUntil.Format(time.RFC3339),
		})
	}
}
