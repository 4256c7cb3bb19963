package quote

import (
	"math/rand"
	"strings"
	"text/template"
)

// PromptFunc produces the user-turn prompt asking the model for a quote.
type PromptFunc func() string

var themes = []string{
	"perseverance",
	"curiosity",
	"kindness",
	"courage",
	"growth",
	"gratitude",
	"creativity",
	"patience",
}

var promptTemplate = template.Must(template.New("prompt").Parse(
	`Generate one short, original, inspirational quote about {{.Theme}} for someone who just reached out through a contact form. ` +
		`Keep it under 25 words. Reply with the quote text only, without quotation marks, attribution or commentary.`,
))

// NewPromptTemplate returns a PromptFunc that picks a theme with rng for each prompt.
func NewPromptTemplate(rng *rand.Rand) PromptFunc {
	return func() string {
		var b strings.Builder
		// Executing a parsed constant template with a string field cannot fail.
		_ = promptTemplate.Execute(&b, struct{ Theme string }{themes[rng.Intn(len(themes))]})
		return b.String()
	}
}
