package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/beanledger/parser"
)

func parseError(t *testing.T, input string) error {
	t.Helper()

	entries, err := parser.ParseString(input, parser.WithRecordedErrors())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries.Errors))
	return entries.Errors[0]
}

func TestTextFormatter(t *testing.T) {
	tf := NewTextFormatter()

	t.Run("ParseError", func(t *testing.T) {
		out := tf.Format(parseError(t, "2024-01-01 note Assets:Cash \"x\"\n"))
		assert.Contains(t, out, "note")
		assert.Contains(t, out, "  | 2024-01-01 note Assets:Cash \"x\"")
	})

	t.Run("MultilineStatement", func(t *testing.T) {
		out := tf.Format(parseError(t, "2024-01-01 * \"x\"\n  Assets:Cash nonsense\n"))
		assert.Contains(t, out, "  | 2024-01-01 * \"x\"\n")
		assert.Contains(t, out, "  |   Assets:Cash nonsense\n")
	})

	t.Run("SegmentError", func(t *testing.T) {
		out := tf.Format(&parser.SegmentError{Line: 3, Text: "stray"})
		assert.Contains(t, out, "line 3")
		assert.Contains(t, out, "  | stray")
	})

	t.Run("PlainError", func(t *testing.T) {
		assert.Equal(t, "error: boom\n", tf.Format(errors.New("boom")))
	})

	t.Run("FormatAll", func(t *testing.T) {
		out := tf.FormatAll([]error{errors.New("one"), errors.New("two")})
		assert.Contains(t, out, "error: one")
		assert.Contains(t, out, "error: two")
	})
}

func TestJSONFormatter(t *testing.T) {
	jf := NewJSONFormatter()

	out := jf.FormatAll([]error{
		parseError(t, "2024-01-01 note Assets:Cash \"x\"\n"),
		&parser.SegmentError{Line: 3, Text: "stray"},
	})

	var decoded []map[string]any
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2, len(decoded))
	assert.Equal(t, "2024-01-01 note Assets:Cash \"x\"", decoded[0]["statement"].(string))
	assert.Equal(t, float64(3), decoded[1]["line"].(float64))
}
