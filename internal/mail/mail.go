// Package mail sends the contact form emails through Amazon SES.
package mail

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"github.com/nituparimi/genAI/types"
)

// SESv2SendEmailAPI allows sending a single email.
type SESv2SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

const charset = "UTF-8"

// message is the plain-text email sent by Notifier and Responder.
type message struct {
	to      string
	replyTo string
	subject string
	body    string
}

func send(ctx context.Context, api SESv2SendEmailAPI, source string, msg message) types.Outcome {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(source),
		Destination: &sestypes.Destination{
			ToAddresses: []string{msg.to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Charset: aws.String(charset), Data: aws.String(msg.subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Charset: aws.String(charset), Data: aws.String(msg.body)},
				},
			},
		},
	}
	if msg.replyTo != "" {
		input.ReplyToAddresses = []string{msg.replyTo}
	}

	out, err := api.SendEmail(ctx, input)
	if err != nil {
		return types.Outcome{Err: err}
	}

	var id string
	if out != nil && out.MessageId != nil {
		id = *out.MessageId
	}
	return types.Outcome{MessageID: id}
}

// ProviderMessage returns the message reported by the AWS service for err, or
// err.Error() when err did not come from a service response.
func ProviderMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}
