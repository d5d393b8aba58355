package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskdesk/internal/core/domain"
)

// Rule names accepted by Validate.
const (
	RuleRequired = "required"
	RuleEmail    = "email"
	RuleURL      = "url"
)

// Message keys, resolved through the translator at the output boundary.
const (
	MsgRequired = "validationRequired"
	MsgEmail    = "validationEmail"
	MsgURL      = "validationURL"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

type rule struct {
	tag     string
	message string
}

// email and url accept an empty value; pair them with required when needed.
// url only accepts http and https links.
var rules = map[string]rule{
	RuleRequired: {tag: "required", message: MsgRequired},
	RuleEmail:    {tag: "omitempty,email", message: MsgEmail},
	RuleURL:      {tag: "omitempty,http_url", message: MsgURL},
}

var validate = validator.New()

// Validate returns the message key of the last failing rule, or "" when the
// value passes. Unknown rules are ignored. Values are trimmed first.
func Validate(value string, appliedRules ...string) string {
	value = strings.TrimSpace(value)

	var failed string
	for _, name := range appliedRules {
		r, ok := rules[name]
		if !ok {
			continue
		}
		if err := validate.Var(value, r.tag); err != nil {
			failed = r.message
		}
	}
	return failed
}

// Field describes the rules of one input and receives its error key.
type Field struct {
	Rules []string
	Error string
}

// ValidateFields checks every field in validations against fields and stores
// each outcome in the Field. It reports whether all fields are valid.
func ValidateFields(fields map[string]string, validations map[string]*Field) bool {
	valid := true
	for key, field := range validations {
		field.Error = Validate(fields[key], field.Rules...)
		if field.Error != "" {
			valid = false
		}
	}
	return valid
}

// ClearErrors resets every field's error.
func ClearErrors(validations map[string]*Field) {
	for _, field := range validations {
		field.Error = ""
	}
}

// TaskPayload is the raw user input for a new task.
type TaskPayload struct {
	Title       string
	Description string
	DueDate     string
	ColumnID    *uint64
	UserID      *uint64
	StatusID    *int
	Tags        []string
	URL         string
}

func BuildCreateTaskInput(req TaskPayload) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if Validate(title, RuleRequired) != "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if Validate(req.URL, RuleURL) != "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.DueDate != "" {
		if _, ok := domain.ParseDueDate(req.DueDate); !ok {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}
	if req.StatusID != nil && domain.StatusLabel(req.StatusID) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		DueDate:     strings.TrimSpace(req.DueDate),
		ColumnID:    req.ColumnID,
		UserID:      req.UserID,
		StatusID:    req.StatusID,
		Tags:        domain.JoinTags(req.Tags),
		URL:         strings.TrimSpace(req.URL),
	}, nil
}

// FieldError reports the failing rule of a named input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Check validates one named value and returns a *FieldError on failure.
func Check(field, value string, appliedRules ...string) error {
	if msg := Validate(value, appliedRules...); msg != "" {
		return &FieldError{Field: field, Message: msg}
	}
	return nil
}
