// Package ticker maps raw user-entered stock codes to provider-ready
// symbols.
package ticker

import "strings"

// Symbol holds the two forms of a user-entered stock code: Lookup is what
// the market-data provider is queried with, Display is what replies echo
// back.
type Symbol struct {
	Lookup  string
	Display string
}

// Normalize uppercases raw and appends suffix when the input is purely
// numeric, the convention for Taiwan exchange listings. Anything else,
// including input already carrying a '.' market separator, passes through
// unchanged, so Normalize is idempotent. Symbol existence is not checked
// here; that is the provider's job.
func Normalize(raw, suffix string) Symbol {
	display := strings.ToUpper(raw)
	lookup := display
	if isDigits(display) {
		lookup = display + suffix
	}
	return Symbol{Lookup: lookup, Display: display}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
