// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package oracle implements the enrichment oracle on an OpenAI-compatible
// chat-completion API.
package oracle

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/tdnguyen/recipe-kb/internal/enrich"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

const (
	defaultModel          = openai.GPT4oMini
	defaultRequestsPerSec = 3
	burst                 = 5
)

// Client calls a chat model for translation, classification, and synonym
// generation. A shared rate limiter bounds the request rate across all
// concurrent enrichment workers.
type Client struct {
	api     *openai.Client
	model   string
	limiter *rate.Limiter
}

// New builds a Client from the oracle configuration. Zero-valued model and
// rate fields fall back to defaults.
func New(cfg types.OracleConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSec
	}
	return &Client{
		api:     openai.NewClient(cfg.APIKey),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Translate returns the English name for a Vietnamese ingredient name.
func (c *Client) Translate(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf(`Translate the Vietnamese ingredient name to English. Only return the English name, nothing else.

Examples:
- Cà chua -> Tomato
- Thịt heo -> Pork
- Bắp cải -> Cabbage
- Húng lủi -> Peppermint

Translate: %s ->`, name)

	return c.chat(ctx, prompt, 30)
}

// Classify asks the model to pick one label from the category set and
// returns the raw response; the enricher decodes it.
func (c *Client) Classify(ctx context.Context, name string, set enrich.CategorySet) (string, error) {
	var sb strings.Builder
	for _, l := range set.Labels {
		fmt.Fprintf(&sb, "- %s: %s\n", l.Code, l.Description)
	}

	prompt := fmt.Sprintf(`Hãy phân loại nguyên liệu "%s" vào MỘT trong các nhóm sau:
%s
Trả lời chỉ MỘT từ khóa, ví dụ: %s`, name, sb.String(), set.Labels[0].Code)

	return c.chat(ctx, prompt, 15)
}

// Synonyms asks the model for alternative Vietnamese names and returns up to
// types.SynonymCount of them.
func (c *Client) Synonyms(ctx context.Context, name string) ([]string, error) {
	prompt := fmt.Sprintf(`Cho từ "%s", hãy liệt kê 3 từ đồng nghĩa hoặc cách gọi khác trong tiếng Việt.

Ví dụ:
- bắp -> ngô, trái bắp, bắp ngô
- cà chua -> cà, tomato, quả cà chua
- thịt heo -> thịt lợn, heo, lợn

Với từ "%s", hãy trả lời theo format: từ1, từ2, từ3`, name, name)

	resp, err := c.chat(ctx, prompt, 50)
	if err != nil {
		return nil, err
	}
	return parseSynonyms(resp), nil
}

func (c *Client) chat(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseSynonyms splits a comma-separated response into at most
// types.SynonymCount trimmed, non-empty entries.
func parseSynonyms(resp string) []string {
	var out []string
	for _, part := range strings.Split(resp, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == types.SynonymCount {
			break
		}
	}
	return out
}
