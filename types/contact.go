// Package types provides common data types shared by the contact form Lambda components.
package types

// Submission models a single contact form submission.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Outcome reports the result of a best-effort outbound step such as sending an email.
type Outcome struct {
	MessageID string
	Err       error
}

// OK reports whether the step succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}
