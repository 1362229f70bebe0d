package sanitizer_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/sanitizer"
)

func TestFormatZipcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    field.Value
		expected string
	}{
		{name: "seven digits pad to nine", input: field.Text("9021012"), expected: "00902-1012"},
		{name: "five digits", input: field.Text("90210"), expected: "90210"},
		{name: "short code pads to five", input: field.Text("501"), expected: "00501"},
		{name: "nine digits", input: field.Text("902101234"), expected: "90210-1234"},
		{name: "already formatted", input: field.Text("90210-1234"), expected: "90210-1234"},
		{name: "six digits pad to nine", input: field.Text("123456"), expected: "00012-3456"},
		{name: "extra digits are dropped", input: field.Text("12345678901"), expected: "12345-6789"},
		{name: "sign is ignored", input: field.Text("-1234"), expected: "01234"},
		{name: "text around digits", input: field.Text("ZIP: 02134"), expected: "02134"},
		{name: "number value", input: field.Int(2134), expected: "02134"},
		{name: "empty", input: field.Text(""), expected: "00000"},
		{name: "null", input: field.Null(), expected: "00000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatZipcode(tt.input))
		})
	}
}

func TestFormatZipcode_Shape(t *testing.T) {
	t.Parallel()

	shape := regexp.MustCompile(`^(\d{5}|\d{5}-\d{4})$`)
	inputs := []string{"", "1", "12", "1234", "12345", "123456", "1234567", "12345678", "123456789", "1234567890", "abc", "-9", "1.2"}

	for _, in := range inputs {
		assert.Regexp(t, shape, sanitizer.FormatZipcode(field.Text(in)), "input %q", in)
	}
}
