package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/s21platform/chat-delivery-service/pkg/reconciler"
)

const (
	pollPath           = "/api/chat/poll"
	defaultHTTPTimeout = 10 * time.Second
)

type pollResponse struct {
	Items     []Event  `json:"items"`
	Removed   []string `json:"removed"`
	Timestamp int64    `json:"timestamp"`
	Available bool     `json:"available"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Poller queries the fallback poll endpoint.
type Poller struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewPoller(baseURL, token string) *Poller {
	return &Poller{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (p *Poller) Poll(ctx context.Context, sub reconciler.Subscription, since int64) (*reconciler.PollResult, error) {
	query := url.Values{}
	query.Set("action", sub.Action)
	query.Set("since", strconv.FormatInt(since, 10))
	if sub.ScopeID != "" {
		query.Set("scope_id", sub.ScopeID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+pollPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send poll request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Error}
	}

	var body pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode poll response: %v", err)
	}

	result := &reconciler.PollResult{
		Items:     make([]reconciler.Item, len(body.Items)),
		Removed:   body.Removed,
		Timestamp: body.Timestamp,
		Available: body.Available,
	}
	for i, event := range body.Items {
		result.Items[i] = event.Item()
	}

	return result, nil
}

type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("poll request failed with status %d: %s", e.Code, e.Message)
}
