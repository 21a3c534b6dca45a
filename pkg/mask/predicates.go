package mask

// Character classes are ASCII only.
var (
	// Digit accepts 0-9.
	Digit = Pattern(IsDigit)

	// Letter accepts a-z and A-Z.
	Letter = Pattern(IsLetter)

	// Alphanumeric accepts letters and digits.
	Alphanumeric = Pattern(IsAlphanumeric)

	// NonWhitespace accepts anything except whitespace.
	NonWhitespace = Pattern(IsNonWhitespace)

	// Any accepts every character.
	Any = Pattern(func(rune) bool { return true })
)

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func IsAlphanumeric(r rune) bool {
	return IsDigit(r) || IsLetter(r)
}

// IsNonWhitespace mirrors the \S class of regular expressions.
func IsNonWhitespace(r rune) bool {
	return !IsWhitespace(r)
}

// IsWhitespace mirrors the \s class of regular expressions.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func none(rune) bool { return false }
