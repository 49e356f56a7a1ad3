package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultThreshold filters spans the model scored below it.
	DefaultThreshold = 0.5

	defaultTimeout = 2 * time.Minute
)

// HTTPClient talks to a GLiNER-style serving endpoint over JSON. The server
// is expected to expose POST /predict taking {text, labels, threshold} and
// returning {"entities": [{start, end, label, text, score}, ...]} with
// entities sorted by start offset.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type predictRequest struct {
	Text      string   `json:"text"`
	Labels    []string `json:"labels"`
	Threshold float64  `json:"threshold"`
}

type predictResponse struct {
	Entities []Span `json:"entities"`
}

func (c *HTTPClient) Extract(ctx context.Context, text string, labels []string, threshold float64) ([]Span, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	// NOTE: the model expects lower-cased labels.
	lowered := make([]string, len(labels))
	for i, label := range labels {
		lowered[i] = strings.ToLower(label)
	}

	body, err := json.Marshal(predictRequest{Text: text, Labels: lowered, Threshold: threshold})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner service returned status %d", resp.StatusCode)
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ner response: %w", err)
	}
	return decoded.Entities, nil
}
