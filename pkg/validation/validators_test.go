package validation_test

import (
	"testing"

	"jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode string

func (m mode) Valid() bool { return m == "Remote" || m == "Hybrid" }

type profile struct {
	FirstName   string `validate:"required,valid_name"`
	PhoneNumber string `validate:"required,valid_phone"`
	Title       string `validate:"no_emoji"`
	Mode        mode   `validate:"required,enum"`
	Optional    *mode  `validate:"omitempty,enum"`
}

func TestCustomValidators(t *testing.T) {
	v := validation.New()

	valid := profile{FirstName: "Anne-Marie O'Neil", PhoneNumber: "+14155550100", Title: "Lead (Platform)", Mode: "Remote"}
	require.NoError(t, v.Struct(valid))

	cases := map[string]func(p *profile){
		"digits-only name": func(p *profile) { p.FirstName = "<script>" },
		"short phone":      func(p *profile) { p.PhoneNumber = "12345" },
		"letters in phone": func(p *profile) { p.PhoneNumber = "+1415CALLME" },
		"emoji title":      func(p *profile) { p.Title = "Rockstar 🚀" },
		"unknown enum":     func(p *profile) { p.Mode = "Office" },
		"unknown optional": func(p *profile) { m := mode("Moon"); p.Optional = &m },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid
			mutate(&p)
			assert.Error(t, v.Struct(p))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := validation.New()
	err := v.Struct(profile{PhoneNumber: "1", Mode: "Office"})
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Contains(t, msgs, "First name is required")
	assert.Contains(t, msgs, "Phone number must be 7-15 digits with an optional leading +")
	assert.Contains(t, msgs, `Mode has an unsupported value "Office"`)

	assert.Contains(t, validation.Message(err), "; ")
}

func TestFormatNonValidationError(t *testing.T) {
	msgs := validation.FormatValidationErrors(assert.AnError)
	assert.Equal(t, []string{assert.AnError.Error()}, msgs)
}
