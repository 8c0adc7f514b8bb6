// Package intent classifies inbound chat messages into bot commands.
package intent

import "strings"

type Kind int

const (
	// Help is the catch-all for anything unrecognized.
	Help Kind = iota
	// Menu requests the static feature menu.
	Menu
	// Quote is an explicit quote command carrying a ticker argument.
	Quote
	// Checkup is an explicit stock-checkup command carrying a ticker argument.
	Checkup
	// Bare is a single-token message treated as a ticker to quote.
	Bare
	// Malformed is an explicit command missing its ticker argument.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Menu:
		return "menu"
	case Quote:
		return "quote"
	case Checkup:
		return "checkup"
	case Bare:
		return "bare-ticker"
	case Malformed:
		return "malformed"
	default:
		return "help"
	}
}

// Intent is the outcome of classifying one message.
type Intent struct {
	Kind   Kind
	Ticker string
	// Cmd names the command that matched when Kind is Malformed, so the
	// caller can pick the right usage hint.
	Cmd Kind
}

var (
	menuTriggers    = []string{"menu", "選單"}
	quotePrefixes   = []string{"報價", "查股"}
	checkupPrefixes = []string{"健檢", "checkup"}
)

// Classify runs a single pass over the trimmed message text. First match
// wins; explicit commands outrank the bare-ticker heuristic so multi-word
// messages are never mistaken for one garbled ticker.
func Classify(text string) Intent {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	parts := strings.Fields(text)

	for _, t := range menuTriggers {
		if lower == t {
			return Intent{Kind: Menu}
		}
	}
	if cmd, ok := matchCommand(lower, quotePrefixes, Quote); ok {
		return withArg(cmd, parts)
	}
	if cmd, ok := matchCommand(lower, checkupPrefixes, Checkup); ok {
		return withArg(cmd, parts)
	}
	if len(parts) == 1 {
		return Intent{Kind: Bare, Ticker: parts[0]}
	}
	return Intent{Kind: Help}
}

func matchCommand(lower string, prefixes []string, kind Kind) (Kind, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return kind, true
		}
	}
	return Help, false
}

func withArg(cmd Kind, parts []string) Intent {
	if len(parts) < 2 {
		return Intent{Kind: Malformed, Cmd: cmd}
	}
	return Intent{Kind: cmd, Ticker: parts[1]}
}
