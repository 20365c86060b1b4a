package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() Fields {
	return Fields{
		Name:           "Ada",
		Email:          "ada@x.io",
		Profession:     "Engineer",
		ReferralSource: "Friend",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Fields)
		wantErr error
	}{
		{name: "valid", mutate: func(f *Fields) {}},
		{name: "profession optional", mutate: func(f *Fields) { f.Profession = "" }},
		{name: "missing name", mutate: func(f *Fields) { f.Name = "" }, wantErr: ErrMissingFields},
		{name: "missing email", mutate: func(f *Fields) { f.Email = "" }, wantErr: ErrMissingFields},
		{name: "missing referral source", mutate: func(f *Fields) { f.ReferralSource = "" }, wantErr: ErrMissingFields},
		{name: "other without specification", mutate: func(f *Fields) { f.ReferralSource = "Other" }, wantErr: ErrMissingSpecification},
		{name: "other with specification", mutate: func(f *Fields) {
			f.ReferralSource = "Other"
			f.OtherReferralSource = "Podcast"
		}},
		{name: "email without at", mutate: func(f *Fields) { f.Email = "foo" }, wantErr: ErrInvalidEmail},
		{name: "email without dot", mutate: func(f *Fields) { f.Email = "foo@bar" }, wantErr: ErrInvalidEmail},
		{name: "email without local part", mutate: func(f *Fields) { f.Email = "@bar.com" }, wantErr: ErrInvalidEmail},
		{name: "email with inner space", mutate: func(f *Fields) { f.Email = "a b@x.io" }, wantErr: ErrInvalidEmail},
		{name: "email is not trimmed", mutate: func(f *Fields) { f.Email = " ada@x.io" }, wantErr: ErrInvalidEmail},
		{name: "email with no-break space", mutate: func(f *Fields) { f.Email = "ada\u00a0b@x.io" }, wantErr: ErrInvalidEmail},
		{name: "email with line separator", mutate: func(f *Fields) { f.Email = "ada@x\u2028y.io" }, wantErr: ErrInvalidEmail},
		{name: "email with vertical tab", mutate: func(f *Fields) { f.Email = "ada@x.i\vo" }, wantErr: ErrInvalidEmail},
		{name: "email with byte order mark", mutate: func(f *Fields) { f.Email = "\ufeffada@x.io" }, wantErr: ErrInvalidEmail},
		{name: "email with ideographic space", mutate: func(f *Fields) { f.Email = "ada@x.\u3000io" }, wantErr: ErrInvalidEmail},
		{name: "email with non-ascii letters", mutate: func(f *Fields) { f.Email = "zoë@exämple.de" }},
		{name: "whitespace name counts as filled", mutate: func(f *Fields) { f.Name = " " }},
		{name: "missing fields beat bad email", mutate: func(f *Fields) {
			f.Name = ""
			f.Email = "foo"
		}, wantErr: ErrMissingFields},
		{name: "missing specification beats bad email", mutate: func(f *Fields) {
			f.ReferralSource = "Other"
			f.Email = "foo"
		}, wantErr: ErrMissingSpecification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			err := Validate(f)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Details)
		})
	}
}

func TestValidate_DetailsUseJSONNames(t *testing.T) {
	f := validFields()
	f.ReferralSource = "Other"

	var validationErr *ValidationError
	require.ErrorAs(t, Validate(f), &validationErr)

	require.Len(t, validationErr.Details, 1)
	assert.Equal(t, "otherReferralSource", validationErr.Details[0].Field)
	assert.Equal(t, "required_if", validationErr.Details[0].Tag)
}

func TestFields_ResolvedReferralSource(t *testing.T) {
	f := Fields{ReferralSource: "Other", OtherReferralSource: "Podcast"}
	assert.Equal(t, "Podcast", f.ResolvedReferralSource())

	f = Fields{ReferralSource: "Blog", OtherReferralSource: "stale"}
	assert.Equal(t, "Blog", f.ResolvedReferralSource())
}

func TestToastMessage(t *testing.T) {
	assert.Equal(t, MessageMissingFields, ToastMessage(&ValidationError{Err: ErrMissingFields}))
	assert.Equal(t, MessageMissingSpecification, ToastMessage(ErrMissingSpecification))
	assert.Equal(t, MessageInvalidEmail, ToastMessage(ErrInvalidEmail))
	assert.Equal(t, MessageRateLimited, ToastMessage(ErrRateLimited))
	assert.Equal(t, MessageRelayFailed, ToastMessage(errors.Join(ErrRelayFailed, errors.New("status 500"))))
	assert.Equal(t, MessageUnknown, ToastMessage(errors.New("connection refused")))
}
