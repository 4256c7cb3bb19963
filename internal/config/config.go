// Package config loads the settings the contact form Lambda needs to run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Names of the environment variables read by Load.
const (
	EnvReceiverEmail  = "RECEIVER_EMAIL"
	EnvSenderEmail    = "SENDER_EMAIL"
	EnvSenderName     = "SENDER_NAME"
	EnvMailRegion     = "SES_REGION"
	EnvInferRegion    = "BEDROCK_REGION"
	EnvModelID        = "CLAUDE_MODEL_ID"
	EnvLogLevel       = "LOG_LEVEL"
	EnvSSMPath        = "CONFIG_SSM_PATH"
	EnvDotenvSelector = "ENV"
)

// Config holds the settings loaded once at process start. It is passed by value
// into each component and never modified afterwards.
type Config struct {
	ReceiverEmail   string
	SenderEmail     string
	SenderName      string
	MailRegion      string
	InferenceRegion string
	ModelID         string
}

// Source returns the SES source address in the form "Name <address>".
func (c Config) Source() string {
	return fmt.Sprintf("%s <%s>", c.SenderName, c.SenderEmail)
}

// Load builds a Config from getenv, typically os.Getenv. It returns an error
// naming every required setting that is missing or empty.
func Load(getenv func(string) string) (Config, error) {
	get := func(name string) string {
		return strings.TrimSpace(getenv(name))
	}

	cfg := Config{
		ReceiverEmail:   get(EnvReceiverEmail),
		SenderEmail:     get(EnvSenderEmail),
		SenderName:      get(EnvSenderName),
		MailRegion:      get(EnvMailRegion),
		InferenceRegion: get(EnvInferRegion),
		ModelID:         get(EnvModelID),
	}

	return cfg, cfg.Validate()
}

// Validate checks that every required setting is present.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{EnvReceiverEmail, c.ReceiverEmail},
		{EnvSenderEmail, c.SenderEmail},
		{EnvSenderName, c.SenderName},
		{EnvMailRegion, c.MailRegion},
		{EnvInferRegion, c.InferenceRegion},
		{EnvModelID, c.ModelID},
	}

	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is not set", r.name))
		}
	}
	if len(errs) != 0 {
		return fmt.Errorf("missing required configuration: %w", errors.Join(errs...))
	}
	return nil
}

// LoadDotenv loads ".env.<env>" into the process environment when env is
// non-empty. Variables already set are left alone and a missing file is ignored.
// It reports whether a file was loaded.
func LoadDotenv(env string) bool {
	if env == "" {
		return false
	}
	return godotenv.Load(".env."+env) == nil
}

// Overlay returns a getenv function that prefers non-empty values from getenv
// and falls back to params.
func Overlay(getenv func(string) string, params map[string]string) func(string) string {
	return func(name string) string {
		if v := getenv(name); strings.TrimSpace(v) != "" {
			return v
		}
		return params[name]
	}
}
