package domain

import (
	"regexp"
	"strings"
)

// Message is one contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// emailPattern accepts a basic local@domain.tld shape. Deliverability is the
// mail relay's problem, not ours.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate checks every rule independently and returns all applicable
// errors keyed by field, so the form can show them simultaneously.
func (m Message) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(m.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(m.Email) {
		errs["email"] = "Email is invalid"
	}

	if strings.TrimSpace(m.Message) == "" {
		errs["message"] = "Message is required"
	}

	return errs
}
