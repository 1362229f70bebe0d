package sanitizer

import "github.com/dmitrymomot/textcanon/pkg/field"

const (
	zipLength      = 5
	zipPlus4Length = 9
)

// FormatZipcode normalizes v to a US ZIP code: "#####" or "#####-####".
//
// Up to nine digits are taken from the input. Shorter codes are left-padded
// with zeros to five digits, or to nine when more than five digits are
// present, so "9021012" becomes "00902-1012".
func FormatZipcode(v field.Value) string {
	digits := digitsOnly(v.String())
	if len(digits) > zipPlus4Length {
		digits = digits[:zipPlus4Length]
	}

	switch n := len(digits); {
	case n < zipLength:
		digits = AddLeadingPadding(field.Text(digits), '0', zipLength)
	case n > zipLength && n < zipPlus4Length:
		digits = AddLeadingPadding(field.Text(digits), '0', zipPlus4Length)
	}

	if len(digits) == zipPlus4Length {
		return digits[:zipLength] + "-" + digits[zipLength:]
	}
	return digits
}
