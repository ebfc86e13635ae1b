package hscode

import "strings"

const (
	// CodeLength is the canonical stored length of a classification code.
	CodeLength = 10

	Prefix8Length = 8
	Prefix6Length = 6
)

// Normalize converts an arbitrary code string into the canonical 10-digit
// form: non-digit characters are stripped, short codes are right-padded
// with '0', long codes are truncated. The same normalization is applied on
// ingestion, lookup and storage so codes compare byte-for-byte.
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(CodeLength)
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == CodeLength {
				break
			}
		}
	}
	digits := b.String()
	if len(digits) < CodeLength {
		digits += strings.Repeat("0", CodeLength-len(digits))
	}
	return digits
}

// Prefix returns the first n characters of a normalized code.
func Prefix(code string, n int) string {
	norm := Normalize(code)
	if n > len(norm) {
		n = len(norm)
	}
	return norm[:n]
}

// HasDigits reports whether the input contains at least one digit, i.e.
// whether Normalize would produce anything other than pure padding.
func HasDigits(code string) bool {
	return strings.ContainsAny(code, "0123456789")
}
