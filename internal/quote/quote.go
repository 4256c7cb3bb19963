// Package quote asks an Anthropic Claude model on Amazon Bedrock for a short quote.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"
)

// FallbackQuote is used when no quote could be generated.
const FallbackQuote = "'Believe in yourself and all that you are.'"

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 150
	systemPrompt     = "You are an assistant that generates concise and original quotes to engage and inspire users."
	contentTypeJSON  = "application/json"
)

// BedrockInvokeModelAPI allows invoking a Bedrock model with a native request body.
type BedrockInvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system"`
	Messages         []message `json:"messages"`
}

// ExtractionError reports a model response without usable generated text.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "the response does not contain the expected 'content' field: " + e.Reason
}

// Generator requests quotes from a single Bedrock model.
type Generator struct {
	api     BedrockInvokeModelAPI
	modelID string
	prompt  PromptFunc
	log     *zap.Logger
}

// NewGenerator creates a Generator for modelID that builds user prompts with prompt.
func NewGenerator(api BedrockInvokeModelAPI, modelID string, prompt PromptFunc, log *zap.Logger) *Generator {
	return &Generator{
		api:     api,
		modelID: modelID,
		prompt:  prompt,
		log:     log,
	}
}

// Generate returns the trimmed text of the first content block of the model's
// reply. Every failure is logged and returned; callers decide on a fallback.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	quote, err := g.generate(ctx)
	if err != nil {
		g.log.Error("error generating quote", zap.Error(err))
		return "", err
	}
	return quote, nil
}

func (g *Generator) generate(ctx context.Context) (string, error) {
	body, err := json.Marshal(messagesRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           systemPrompt,
		Messages:         []message{{Role: "user", Content: g.prompt()}},
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request body: %w", err)
	}

	out, err := g.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		Body:        body,
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
	})
	if err != nil {
		return "", fmt.Errorf("error invoking model %s: %w", g.modelID, err)
	}
	if out == nil {
		return "", &ExtractionError{Reason: "empty response"}
	}

	g.log.Debug("full response from Bedrock", zap.ByteString("body", out.Body))

	return extractText(out.Body)
}

// extractText reads content[0].text from a Messages API response body.
func extractText(body []byte) (string, error) {
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("could not unmarshal model response: %w", err)
	}

	raw, ok := resp["content"]
	if !ok {
		return "", &ExtractionError{Reason: "field is missing"}
	}

	var content []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &content); err != nil || content == nil {
		return "", &ExtractionError{Reason: "field is not a list"}
	}
	if len(content) == 0 {
		return "", &ExtractionError{Reason: "list is empty"}
	}

	rawText, ok := content[0]["text"]
	if !ok {
		return "", &ExtractionError{Reason: "first element has no text"}
	}
	var text *string
	if err := json.Unmarshal(rawText, &text); err != nil || text == nil {
		return "", &ExtractionError{Reason: "first element text is not a string"}
	}

	return strings.TrimSpace(*text), nil
}
