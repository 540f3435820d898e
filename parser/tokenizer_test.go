package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func tokens(t *testing.T, line string) []string {
	t.Helper()

	it, err := NewTokenizer(line)
	assert.NoError(t, err)

	var out []string
	for {
		token, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, token)
	}
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "Empty", line: "", want: nil},
		{name: "SpacesOnly", line: "   ", want: nil},
		{name: "Fields", line: "  foo   bar  baz   ", want: []string{"foo", "bar", "baz"}},
		{name: "Unicode", line: "  $oo  öar  üa", want: []string{"$oo", "öar", "üa"}},
		{name: "PriceAndCostMarkers", line: "5.123478 USD {} @ 1 CHF", want: []string{"5.123478", "USD", "{}", "@", "1", "CHF"}},
		{name: "SemicolonComment", line: "5.123478 USD ; omg ", want: []string{"5.123478", "USD"}},
		{name: "HashComment", line: "5.123478 USD # omg ", want: []string{"5.123478", "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokens(t, tt.line))
		})
	}
}

func TestTokenizer_Rest(t *testing.T) {
	it, err := NewTokenizer("  foo   bar  baz ; og  ")
	assert.NoError(t, err)

	assert.Equal(t, "foo   bar  baz", it.Rest())

	_, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "bar  baz", it.Rest())

	// Rest does not consume tokens.
	token, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "bar", token)
}

func TestTokenizer_RejectsMultiline(t *testing.T) {
	_, err := NewTokenizer("foo\nbar")
	assert.Error(t, err)
}

func TestTrimComment(t *testing.T) {
	assert.Equal(t, "foo bar", trimComment("foo bar ; comment"))
	assert.Equal(t, "foo bar", trimComment("foo bar # comment"))
	assert.Equal(t, "foo bar", trimComment("  foo bar  "))
	assert.Equal(t, "", trimComment("; only a comment"))

	// Only the last physical line is scanned.
	assert.Equal(t, "foo ; inline\nbar", trimComment("foo ; inline\nbar"))
}
