package form

import (
	"errors"
	"regexp"

	"github.com/akeren/waitlist-relay/internal/models"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// JavaScript's \s also matches vertical tab, Unicode separators and the BOM.
var emailPattern = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

var (
	ErrMissingFields        = errors.New("form: required fields are missing")
	ErrMissingSpecification = errors.New("form: referral source \"Other\" needs a specification")
	ErrInvalidEmail         = errors.New("form: email address is malformed")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("waitlist_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Fields is a snapshot of the form. Values are validated exactly as typed.
type Fields struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required,waitlist_email"`
	Profession          string `json:"profession"`
	ReferralSource      string `json:"referralSource" validate:"required"`
	OtherReferralSource string `json:"otherReferralSource" validate:"required_if=ReferralSource Other"`
}

// ResolvedReferralSource is what gets transmitted: the free-text override when
// "Other" is selected, the selected option otherwise.
func (f Fields) ResolvedReferralSource() string {
	if models.ReferralSource(f.ReferralSource).IsOther() {
		return f.OtherReferralSource
	}
	return f.ReferralSource
}

func (f Fields) Submission() *models.WaitlistSubmission {
	return &models.WaitlistSubmission{
		Name:           f.Name,
		Email:          f.Email,
		Profession:     f.Profession,
		ReferralSource: f.ResolvedReferralSource(),
	}
}

// ValidationError carries the first failing condition plus per-field details.
type ValidationError struct {
	Err     error
	Details []apperrors.ValidationErrorResponse
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate reports at most one condition, checked in order: missing required
// fields, a missing "Other" specification, then a malformed email.
func Validate(f Fields) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	return &ValidationError{
		Err:     firstCondition(fieldErrors),
		Details: apperrors.FormatValidationErrors(err, f),
	}
}

func firstCondition(fieldErrors validator.ValidationErrors) error {
	tags := make(map[string]bool, len(fieldErrors))
	for _, fe := range fieldErrors {
		tags[fe.Tag()] = true
	}

	switch {
	case tags["required"]:
		return ErrMissingFields
	case tags["required_if"]:
		return ErrMissingSpecification
	default:
		return ErrInvalidEmail
	}
}
