package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_MissingName(t *testing.T) {
	errs := Message{Name: "", Email: "x@y.z", Message: "y"}.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "Name is required", errs["name"])
}

func TestValidate_InvalidEmail(t *testing.T) {
	errs := Message{Name: "A", Email: "not-an-email", Message: "y"}.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "Email is invalid", errs["email"])
}

func TestValidate_MissingEmail(t *testing.T) {
	errs := Message{Name: "A", Email: "   ", Message: "y"}.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "Email is required", errs["email"])
}

func TestValidate_AllErrorsReportedTogether(t *testing.T) {
	errs := Message{Name: "  ", Email: "", Message: "\t"}.Validate()
	assert.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Message is required", errs["message"])
}

func TestValidate_Valid(t *testing.T) {
	errs := Message{Name: "A", Email: "a@b.co", Message: "hello"}.Validate()
	assert.Empty(t, errs)
}

func TestValidate_EmailShapes(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.domain.org", "x+tag@y.io"}
	invalid := []string{"a@b", "a b@c.de", "@b.co", "a@.", "plain"}

	for _, e := range valid {
		errs := Message{Name: "A", Email: e, Message: "m"}.Validate()
		assert.Empty(t, errs, "email %q", e)
	}
	for _, e := range invalid {
		errs := Message{Name: "A", Email: e, Message: "m"}.Validate()
		assert.Equal(t, "Email is invalid", errs["email"], "email %q", e)
	}
}
