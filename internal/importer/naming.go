package importer

import "strings"

// Namer synthesizes a display name from a free-text description and a
// payee. It is a replaceable strategy; parsers fall back to DefaultNamer
// when nil.
type Namer func(description, payee string) string

// genericPayees are payee values that add no information to a name.
var genericPayees = []string{"people center"}

// DefaultNamer maps known hardware substrings to a canonical category and
// appends the payee in parentheses when it adds information.
func DefaultNamer(description, payee string) string {
	name := strings.TrimSpace(description)
	lower := strings.ToLower(name)
	for _, c := range []struct{ substr, label string }{
		{"macbook", "MacBook"},
		{"laptop", "Laptop"},
		{"device", "Device"},
	} {
		if strings.Contains(lower, c.substr) {
			name = c.label
			break
		}
	}

	payee = strings.TrimSpace(payee)
	if payee == "" || isGenericPayee(payee) {
		return name
	}
	if strings.Contains(strings.ToLower(description), strings.ToLower(payee)) {
		return name
	}
	return name + " (" + payee + ")"
}

func isGenericPayee(payee string) bool {
	lower := strings.ToLower(payee)
	for _, g := range genericPayees {
		if lower == g {
			return true
		}
	}
	return false
}
