package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "menu english", text: "menu", want: Intent{Kind: Menu}},
		{name: "menu chinese", text: "選單", want: Intent{Kind: Menu}},
		{name: "menu uppercase", text: "MENU", want: Intent{Kind: Menu}},
		{name: "menu padded", text: "  menu  ", want: Intent{Kind: Menu}},

		{name: "quote with ticker", text: "報價 2330", want: Intent{Kind: Quote, Ticker: "2330"}},
		{name: "quote alias", text: "查股 AAPL", want: Intent{Kind: Quote, Ticker: "AAPL"}},
		{name: "quote missing ticker", text: "報價", want: Intent{Kind: Malformed, Cmd: Quote}},
		{name: "quote alias missing ticker", text: "查股", want: Intent{Kind: Malformed, Cmd: Quote}},
		{name: "quote extra tokens keeps first", text: "報價 2330 extra", want: Intent{Kind: Quote, Ticker: "2330"}},

		{name: "checkup with ticker", text: "健檢 2330", want: Intent{Kind: Checkup, Ticker: "2330"}},
		{name: "checkup english", text: "checkup AAPL", want: Intent{Kind: Checkup, Ticker: "AAPL"}},
		{name: "checkup missing ticker", text: "健檢", want: Intent{Kind: Malformed, Cmd: Checkup}},

		{name: "bare numeric ticker", text: "2330", want: Intent{Kind: Bare, Ticker: "2330"}},
		{name: "bare alpha ticker", text: "AAPL", want: Intent{Kind: Bare, Ticker: "AAPL"}},

		{name: "multi word falls back to help", text: "hello there", want: Intent{Kind: Help}},
		{name: "empty falls back to help", text: "", want: Intent{Kind: Help}},
		{name: "whitespace only falls back to help", text: "   ", want: Intent{Kind: Help}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.text))
		})
	}
}
