package formatter

import (
	"bytes"
	"encoding/json"
	"io"
)

type responseBuilder struct {
	indent string
}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a builder for JSON responses. A non-empty indent
// pretty-prints the output.
func NewResponseBuilder(indent string) *responseBuilder {
	rb := newResponseBuilder()
	rb.indent = indent
	return rb
}

// BuildJSON serializes v to JSON
func (rb *responseBuilder) BuildJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := rb.WriteJSON(&buf, v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON serializes v to w followed by a newline
func (rb *responseBuilder) WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if rb.indent != "" {
		enc.SetIndent("", rb.indent)
	}
	return enc.Encode(v)
}
