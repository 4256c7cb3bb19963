package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nituparimi/genAI/internal/config"
	"github.com/nituparimi/genAI/types"
)

// Notifier emails the site owner about each new submission.
type Notifier struct {
	api    SESv2SendEmailAPI
	source string
	to     string
	log    *zap.Logger
}

// NewNotifier creates a Notifier that sends from cfg.Source() to cfg.ReceiverEmail.
func NewNotifier(api SESv2SendEmailAPI, cfg config.Config, log *zap.Logger) *Notifier {
	return &Notifier{
		api:    api,
		source: cfg.Source(),
		to:     cfg.ReceiverEmail,
		log:    log,
	}
}

const notificationBody = `New contact form submission:

Name: %s
Email: %s
Message: %s`

// Notify sends the notification email with the submitter as reply-to. A
// failure is logged and reported in the returned Outcome.
func (n *Notifier) Notify(ctx context.Context, sub types.Submission) types.Outcome {
	out := send(ctx, n.api, n.source, message{
		to:      n.to,
		replyTo: sub.Email,
		subject: fmt.Sprintf("[Contact Form] New submission from %s", sub.Name),
		body:    fmt.Sprintf(notificationBody, sub.Name, sub.Email, sub.Message),
	})
	if !out.OK() {
		n.log.Error("error sending notification email", zap.String("error", ProviderMessage(out.Err)))
		return out
	}

	n.log.Info("notification email sent", zap.String("to", n.to), zap.String("message_id", out.MessageID))
	return out
}
