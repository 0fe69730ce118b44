package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
)

// GenerateOptions control a single generation call.
type GenerateOptions struct {
	MaxOutputTokens int
	Temperature     float64
	// StrictJSON asks the model for machine-parseable output only
	// (responseMimeType application/json). The output is still treated as
	// untrusted text by callers.
	StrictJSON bool
}

// Client is the generative-model client used by the rest of the backend.
// It returns raw text with no assumption about its structure.
type Client interface {
	GenerateText(ctx context.Context, system, user string, opts GenerateOptions) (string, error)
	ModelID() string
}

type Config struct {
	APIKey string
	Model  string
	// Temperature, when > 0, overrides the per-request temperature on
	// every call. Ops tuning knob; zero means requests choose.
	Temperature float64
}

type client struct {
	log         *logger.Logger
	genai       *genai.Client
	model       string
	temperature float64
}

const defaultModel = "gemini-2.0-flash"

// NewClient builds a Gemini-backed Client. A missing API key is not fatal
// here: the server still starts, and every GenerateText call fails fast
// with ErrNoAPIKey until a credential is configured.
func NewClient(ctx context.Context, log *logger.Logger, cfg Config) (Client, error) {
	c := &client{
		log:         log.With("client", "GeminiClient"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
	if c.model == "" {
		c.model = defaultModel
	}

	if cfg.APIKey == "" {
		c.log.Warn("No Gemini API key configured, generation calls will fail")
		return c, nil
	}

	g, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.genai = g
	return c, nil
}

func (c *client) ModelID() string {
	return c.model
}

// effectiveTemperature applies the process-wide override, when configured,
// over the caller's per-kind temperature.
func (c *client) effectiveTemperature(requested float64) float64 {
	if c.temperature > 0 {
		return c.temperature
	}
	return requested
}

func (c *client) GenerateText(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	if c.genai == nil {
		return "", ErrNoAPIKey
	}

	config := &genai.GenerateContentConfig{}
	if opts.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}
	if temp := c.effectiveTemperature(opts.Temperature); temp > 0 {
		t := float32(temp)
		config.Temperature = &t
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if opts.StrictJSON {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: user}}},
	}

	result, err := c.genai.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		c.log.Warn("Gemini generate failed", "model", c.model, "error", err)
		return "", &UpstreamError{Err: err}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Err: fmt.Errorf("empty response from model %s", c.model)}
	}
	return text, nil
}
