package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nituparimi/genAI/internal/config"
	"github.com/nituparimi/genAI/types"
)

// Responder emails the submitter a thank-you note containing a quote.
type Responder struct {
	api        SESv2SendEmailAPI
	source     string
	senderName string
	log        *zap.Logger
}

// NewResponder creates a Responder that sends from cfg.Source() and signs as cfg.SenderName.
func NewResponder(api SESv2SendEmailAPI, cfg config.Config, log *zap.Logger) *Responder {
	return &Responder{
		api:        api,
		source:     cfg.Source(),
		senderName: cfg.SenderName,
		log:        log,
	}
}

//	Parameters in order:
//		- submitter name
//		- quote
//		- sender name
//		- submitter name
const responseBody = `Hi %s,

Thanks for reaching out through my website. I've received your message and will get back to you soon.

Take a moment to reflect on this:

'%s'

Kind regards,
%s

%s, this quote was uniquely generated by AI (Amazon Bedrock) just for you.`

// Respond sends the thank-you email to the submitter. A failure is logged and
// reported in the returned Outcome.
func (r *Responder) Respond(ctx context.Context, sub types.Submission, quote string) types.Outcome {
	out := send(ctx, r.api, r.source, message{
		to:      sub.Email,
		subject: fmt.Sprintf("Thank you for contacting %s", r.senderName),
		body:    fmt.Sprintf(responseBody, sub.Name, quote, r.senderName, sub.Name),
	})
	if !out.OK() {
		r.log.Error("error sending user response email", zap.String("error", ProviderMessage(out.Err)))
		return out
	}

	r.log.Info("user response email sent", zap.String("to", sub.Email), zap.String("message_id", out.MessageID))
	return out
}
