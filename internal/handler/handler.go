// Package handler provides the Lambda function implementation.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/nituparimi/genAI/internal/quote"
	"github.com/nituparimi/genAI/types"
)

// Notifier informs the site owner about a submission.
type Notifier interface {
	Notify(ctx context.Context, sub types.Submission) types.Outcome
}

// QuoteGenerator produces a short quote for the response email.
type QuoteGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Responder sends the submitter a response containing a quote.
type Responder interface {
	Respond(ctx context.Context, sub types.Submission, quote string) types.Outcome
}

// ErrMissingField is returned when a required submission field is absent or empty.
var ErrMissingField = errors.New("missing required field")

// Handler provides the Lambda implementation that processes contact form submissions.
type Handler struct {
	notifier  Notifier
	generator QuoteGenerator
	responder Responder
	log       *zap.Logger
}

// Config provides the components used by a Handler.
type Config struct {
	Notifier  Notifier
	Generator QuoteGenerator
	Responder Responder
	Logger    *zap.Logger
}

// New creates a new Handler instance.
func New(cfg Config) *Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		notifier:  cfg.Notifier,
		generator: cfg.Generator,
		responder: cfg.Responder,
		log:       log,
	}
}

// HandleSubmission notifies the owner, generates a quote and emails it to the
// submitter. Mail and generation failures do not change the result; only a
// submission that cannot be parsed yields a 500 response.
func (h *Handler) HandleSubmission(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	sub, err := parseSubmission(req)
	if err != nil {
		h.log.Error("error handling submission", zap.Error(err))
		return failure(err), nil
	}
	h.log.Info("received message", zap.String("name", sub.Name))

	notified := h.notifier.Notify(ctx, sub)

	q, genErr := h.generator.Generate(ctx)
	if genErr != nil {
		h.log.Warn("using fallback quote", zap.Error(genErr))
		q = quote.FallbackQuote
	}

	responded := h.responder.Respond(ctx, sub, q)

	h.log.Info("submission processed",
		zap.Bool("notified", notified.OK()),
		zap.Bool("generated", genErr == nil),
		zap.Bool("responded", responded.OK()),
	)
	return success(), nil
}

func parseSubmission(req events.APIGatewayV2HTTPRequest) (types.Submission, error) {
	body := req.Body
	if req.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return types.Submission{}, fmt.Errorf("could not decode body: %w", err)
		}
		body = string(b)
	}
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}

	var sub types.Submission
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		return types.Submission{}, fmt.Errorf("could not unmarshal body: %w", err)
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"message", strings.TrimSpace(sub.Message)},
	} {
		if f.value == "" {
			return types.Submission{}, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	return sub, nil
}
