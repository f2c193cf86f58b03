// Package ai wraps the Gemini generative-language client. Calls are paced
// by a local limiter and guarded by a circuit breaker; a single failed
// attempt surfaces as an error so handlers can switch to deterministic
// fallback immediately. No retries are performed here.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	genai "github.com/google/generative-ai-go/genai"

	"brief-engine/internal/logger"
)

// ErrUnavailable reports that the provider is currently short-circuited.
var ErrUnavailable = errors.New("generative provider unavailable")

type Client struct {
	client  *genai.Client
	breaker *gobreaker.CircuitBreaker
	pacer   *rate.Limiter
	model   string
	timeout time.Duration
}

// NewClient builds a Gemini client. apiKey must be non-empty; callers
// decide what to do when no key is configured.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GeminiAPI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	// Free-tier pacing with some buffer below the published RPM
	pacer := rate.NewLimiter(rate.Limit(10*0.9/60.0), 2)

	return &Client{
		client:  client,
		breaker: breaker,
		pacer:   pacer,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateText sends the prompt parts in order and returns the
// concatenated candidate text.
func (c *Client) GenerateText(ctx context.Context, parts ...string) (string, error) {
	return c.generate(ctx, "", parts)
}

// GenerateJSON is GenerateText with the response constrained to
// application/json, used by the report path.
func (c *Client) GenerateJSON(ctx context.Context, parts ...string) (string, error) {
	return c.generate(ctx, "application/json", parts)
}

func (c *Client) generate(ctx context.Context, responseMIME string, parts []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.pacer.Wait(ctx); err != nil {
		return "", fmt.Errorf("provider pacing: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		model := c.client.GenerativeModel(c.model)
		model.SetTemperature(0.7)
		if responseMIME != "" {
			model.ResponseMIMEType = responseMIME
		}

		genaiParts := make([]genai.Part, len(parts))
		for i, p := range parts {
			genaiParts[i] = genai.Text(p)
		}

		resp, err := model.GenerateContent(ctx, genaiParts...)
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", ErrUnavailable
		}
		return "", err
	}

	text := extractText(result.(*genai.GenerateContentResponse))
	if text == "" {
		return "", errors.New("empty provider response")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var out string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out += string(text)
			}
		}
	}
	return out
}

// Close releases the underlying client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
