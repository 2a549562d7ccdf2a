package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

const defaultLLMTimeout = 30 * time.Second

// LLM delegates extraction to a language model with a JSON response
// schema. It is a fallible Strategy: callers should put it in a Chain in
// front of the heuristic tier so transport or parsing failures degrade
// quality, not availability.
type LLM struct {
	client  gollem.LLMClient
	timeout time.Duration
}

type LLMOption func(*LLM)

// WithTimeout bounds a single extraction call
func WithTimeout(d time.Duration) LLMOption {
	return func(x *LLM) {
		x.timeout = d
	}
}

// NewLLM creates an LLM extraction tier. A nil client is allowed; the
// tier then always fails and the chain falls through to the next tier.
func NewLLM(client gollem.LLMClient, opts ...LLMOption) *LLM {
	x := &LLM{
		client:  client,
		timeout: defaultLLMTimeout,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

func (x *LLM) Name() string {
	return "llm"
}

// llmResult is the structured output requested from the model
type llmResult struct {
	ActionItems []string `json:"action_items"`
}

func (x *LLM) Extract(ctx context.Context, text string) ([]string, error) {
	if x.client == nil {
		return nil, goerr.New("LLM client is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	schema := &gollem.Parameter{
		Title:       "ActionItems",
		Description: "Action items extracted from free-form notes",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"action_items": {
				Type:        gollem.TypeArray,
				Description: "Each action item as a clear, concise string describing what needs to be done",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
		},
	}

	session, err := x.client.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	prompt := fmt.Sprintf(`Extract all actionable items from the following text.
Each action item must be a clear, concise string describing what needs to be done.
Return the result as JSON with this structure: {"action_items": ["item1", "item2", ...]}
Return an empty array when the text contains no actionable items.

Text:
%s`, text)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate extraction result")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("LLM returned an empty response")
	}

	var result llmResult
	if err := json.Unmarshal([]byte(resp.Texts[0]), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to parse extraction result JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}

	return result.ActionItems, nil
}

var _ Strategy = &LLM{}
