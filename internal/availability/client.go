// Package availability asks a hosted Gemini model whether a custom
// fabric/paint combination is producible. The verdict is advisory: any
// failure on this path degrades to an optimistic canned answer, never to an
// error the caller has to handle.
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

// DefaultModel matches the model the storefront shipped with.
const DefaultModel = "gemini-3-flash-preview"

const fallbackMessage = "سيتم مراجعة طلبك من قبل الفنيين وتأكيده خلال ساعات."

// ErrFabricRequired blocks a check before any call is made. It is the only
// error Check ever returns.
var ErrFabricRequired = errors.New("fabric color required")

// Request names the product and the two requested colors.
type Request struct {
	ProductName string           `json:"productName"`
	Fabric      string           `json:"fabric"`
	Paint       domain.WoodPaint `json:"paint"`
}

// Result is the model's structured verdict. Fallback marks the canned answer
// produced when the model could not be reached or understood.
type Result struct {
	Available   bool   `json:"available"`
	Message     string `json:"message"`
	Alternative string `json:"alternative,omitempty"`
	Fallback    bool   `json:"fallback,omitempty"`
}

type generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Client performs availability checks. A client without a working generator
// (no API key configured) answers every check with the fallback.
type Client struct {
	gen generator
}

// NewGemini builds a client backed by the Gemini API. An empty API key is not
// an error: the client is still usable and serves fallback results.
func NewGemini(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		logx.Warn().Msg("availability: no API key configured, all checks will use the fallback answer")
		return &Client{}, nil
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{gen: &geminiGenerator{client: client, model: model}}, nil
}

// Check issues at most one request per call. Transport, quota, and parse
// failures are logged and absorbed into the fallback result.
func (c *Client) Check(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Fabric) == "" {
		return Result{}, ErrFabricRequired
	}
	if c.gen == nil {
		return fallbackResult(), nil
	}

	raw, err := c.gen.GenerateJSON(ctx, buildPrompt(req))
	if err != nil {
		logx.Error().Err(err).Str("product", req.ProductName).Msg("availability: model call failed")
		return fallbackResult(), nil
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logx.Error().Err(err).Str("raw", raw).Msg("availability: unparsable model response")
		return fallbackResult(), nil
	}
	if result.Message == "" {
		logx.Warn().Str("raw", raw).Msg("availability: response missing message field")
		return fallbackResult(), nil
	}
	return result, nil
}

func fallbackResult() Result {
	return Result{Available: true, Message: fallbackMessage, Fallback: true}
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(
		`بصفتك خبير في مصنع Capitone Furniture للأثاث الراقي في دمياط، هل يمكن تنفيذ طقم صالون "%s" بقماش لون "%s" ودهان خشبي لون "%s"؟ رد بصيغة JSON توضح الحالة (متاح/غير متاح) وسبب تقني بسيط أو نصيحة جمالية.`,
		req.ProductName, req.Fabric, req.Paint,
	)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"available":   {Type: genai.TypeBoolean},
				"message":     {Type: genai.TypeString},
				"alternative": {Type: genai.TypeString},
			},
			Required: []string{"available", "message"},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
