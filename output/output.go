// Package output provides io.Writer-backed sinks for the print profiles.
package output

import (
	"io"

	"github.com/ejoffe/printkit/print/printjson"
	"github.com/ejoffe/printkit/print/printtext"
)

// textWriter implements printtext.Sink for real output
type textWriter struct {
	w io.Writer
}

func (t *textWriter) Accept(fragment string) {
	io.WriteString(t.w, fragment)
}

func (t *textWriter) Text() {}

// NewText creates a text sink that writes to the given io.Writer
func NewText(w io.Writer) printtext.Sink {
	return &textWriter{w: w}
}

// jsonWriter implements printjson.Sink for real output
type jsonWriter struct {
	w io.Writer
}

func (j *jsonWriter) Accept(fragment string) {
	io.WriteString(j.w, fragment)
}

func (j *jsonWriter) JSON() {}

// NewJSON creates a JSON sink that writes to the given io.Writer
func NewJSON(w io.Writer) printjson.Sink {
	return &jsonWriter{w: w}
}

type Matcher interface {
	Match(string) bool
}
