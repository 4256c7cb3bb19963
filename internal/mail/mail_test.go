package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nituparimi/genAI/internal/config"
	"github.com/nituparimi/genAI/types"
)

type mockSESv2SendEmailAPI struct {
	*testing.T
	inputs   []*sesv2.SendEmailInput
	apiError error
}

func (m *mockSESv2SendEmailAPI) SendEmail(
	ctx context.Context,
	params *sesv2.SendEmailInput,
	optFns ...func(*sesv2.Options),
) (*sesv2.SendEmailOutput, error) {
	if params == nil {
		m.Fatal("SendEmail: got nil params")
	}
	m.inputs = append(m.inputs, params)
	if m.apiError != nil {
		return nil, m.apiError
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String(fmt.Sprintf("message-%d", len(m.inputs)))}, nil
}

var testConfig = config.Config{
	ReceiverEmail:   "owner@example.com",
	SenderEmail:     "noreply@example.com",
	SenderName:      "Jane Doe",
	MailRegion:      "eu-west-1",
	InferenceRegion: "us-east-1",
	ModelID:         "model",
}

var testSubmission = types.Submission{
	Name:    "Alex",
	Email:   "alex@example.com",
	Message: "Hello there",
}

func simpleInput(to []string, replyTo []string, subject, body string) *sesv2.SendEmailInput {
	return &sesv2.SendEmailInput{
		FromEmailAddress: aws.String("Jane Doe <noreply@example.com>"),
		Destination:      &sestypes.Destination{ToAddresses: to},
		ReplyToAddresses: replyTo,
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Charset: aws.String("UTF-8"), Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Charset: aws.String("UTF-8"), Data: aws.String(body)},
				},
			},
		},
	}
}

var ignoreUnexported = cmpopts.IgnoreUnexported(
	sesv2.SendEmailInput{},
	sestypes.Destination{},
	sestypes.EmailContent{},
	sestypes.Message{},
	sestypes.Content{},
	sestypes.Body{},
)

func TestNotifier(t *testing.T) {
	t.Run("sends notification to the owner with reply-to set to the submitter", func(t *testing.T) {
		m := &mockSESv2SendEmailAPI{T: t}
		n := NewNotifier(m, testConfig, zap.NewNop())

		out := n.Notify(context.Background(), testSubmission)
		if !out.OK() {
			t.Fatalf("got err %v; expected nil", out.Err)
		}
		if out.MessageID != "message-1" {
			t.Errorf("unexpected MessageID: got %s; expected message-1", out.MessageID)
		}

		if len(m.inputs) != 1 {
			t.Fatalf("unexpected number of SendEmail calls: got %d; expected 1", len(m.inputs))
		}
		want := simpleInput(
			[]string{"owner@example.com"},
			[]string{"alex@example.com"},
			"[Contact Form] New submission from Alex",
			"New contact form submission:\n\nName: Alex\nEmail: alex@example.com\nMessage: Hello there",
		)
		if diff := cmp.Diff(want, m.inputs[0], ignoreUnexported); diff != "" {
			t.Errorf("fields mismatch in SendEmailInput (-want +got):\n%s", diff)
		}
	})

	t.Run("logs the provider message and reports failure", func(t *testing.T) {
		apiErr := &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}
		m := &mockSESv2SendEmailAPI{T: t, apiError: fmt.Errorf("operation error SESv2: SendEmail, %w", apiErr)}
		core, logs := observer.New(zap.InfoLevel)
		n := NewNotifier(m, testConfig, zap.New(core))

		out := n.Notify(context.Background(), testSubmission)
		if out.OK() {
			t.Fatal("got OK outcome; expected failure")
		}
		if !errors.Is(out.Err, apiErr) {
			t.Errorf("unexpected error value: got %v; expected %v", out.Err, apiErr)
		}

		entries := logs.FilterMessage("error sending notification email").All()
		if len(entries) != 1 {
			t.Fatalf("unexpected number of error log entries: got %d; expected 1", len(entries))
		}
		if got := entries[0].ContextMap()["error"]; got != "Email address is not verified." {
			t.Errorf("unexpected logged error: got %v; expected provider message", got)
		}
	})
}

func TestResponder(t *testing.T) {
	t.Run("sends thank-you email with the quote to the submitter", func(t *testing.T) {
		m := &mockSESv2SendEmailAPI{T: t}
		r := NewResponder(m, testConfig, zap.NewNop())

		out := r.Respond(context.Background(), testSubmission, "Stay curious.")
		if !out.OK() {
			t.Fatalf("got err %v; expected nil", out.Err)
		}

		if len(m.inputs) != 1 {
			t.Fatalf("unexpected number of SendEmail calls: got %d; expected 1", len(m.inputs))
		}
		want := simpleInput(
			[]string{"alex@example.com"},
			nil,
			"Thank you for contacting Jane Doe",
			"Hi Alex,\n\n"+
				"Thanks for reaching out through my website. I've received your message and will get back to you soon.\n\n"+
				"Take a moment to reflect on this:\n\n"+
				"'Stay curious.'\n\n"+
				"Kind regards,\n"+
				"Jane Doe\n\n"+
				"Alex, this quote was uniquely generated by AI (Amazon Bedrock) just for you.",
		)
		if diff := cmp.Diff(want, m.inputs[0], ignoreUnexported); diff != "" {
			t.Errorf("fields mismatch in SendEmailInput (-want +got):\n%s", diff)
		}
	})

	t.Run("reports failure without panicking", func(t *testing.T) {
		m := &mockSESv2SendEmailAPI{T: t, apiError: errors.New("connection reset")}
		core, logs := observer.New(zap.InfoLevel)
		r := NewResponder(m, testConfig, zap.New(core))

		out := r.Respond(context.Background(), testSubmission, "Stay curious.")
		if out.OK() {
			t.Fatal("got OK outcome; expected failure")
		}
		if logs.FilterMessage("error sending user response email").Len() != 1 {
			t.Error("expected one error log entry for the failed response email")
		}
	})
}

func TestProviderMessage(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected string
	}{
		{"api error", &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"}, "Rate exceeded"},
		{"wrapped api error", fmt.Errorf("op: %w", &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"}), "Rate exceeded"},
		{"api error without message", &smithy.GenericAPIError{Code: "Throttling"}, "api error Throttling: "},
		{"plain error", errors.New("dial tcp: timeout"), "dial tcp: timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := ProviderMessage(tc.err); !strings.HasPrefix(got, tc.expected) {
				t.Errorf("unexpected message: got %q; expected %q", got, tc.expected)
			}
		})
	}
}
