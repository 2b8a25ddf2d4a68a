package argot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommands(t *testing.T) {
	t.Parallel()

	candidates := []string{"deploy", "delete", "db", "status", "logs"}

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "subsequence match", target: "dply", want: []string{"deploy"}},
		{name: "typo within edit distance", target: "stauts", want: []string{"status"}},
		{name: "case insensitive", target: "LOGS", want: []string{"logs"}},
		{name: "nothing close", target: "xyzzy", want: nil},
		{name: "empty target", target: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, suggestCommands(tt.target, candidates))
		})
	}
}

func TestSuggestCommandsLimit(t *testing.T) {
	t.Parallel()

	got := suggestCommands("a", []string{"aa", "ab", "ac", "ad", "ae"})
	assert.Len(t, got, maxSuggestions)
}
