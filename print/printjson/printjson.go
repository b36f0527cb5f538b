// Package printjson instantiates the print algebra for JSON emission and
// adds the JSON structure builders and value escaping.
package printjson

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ejoffe/printkit/print"
)

// Sink accepts fragments of JSON syntax. The JSON marker keeps JSON sinks
// nominally distinct from text sinks, so unescaped text printers cannot be
// run against a JSON destination by mistake.
type Sink interface {
	print.Sink
	JSON()
}

// Printer emits JSON text to a Sink.
type Printer = print.Printer[Sink]

func String(s string) Printer {
	return print.String[Sink](s)
}

func Number(n int) Printer {
	return print.Number[Sink](n)
}

func Sequence(printers []Printer) Printer {
	return print.Sequence(printers)
}

func SequenceArgs(printers ...Printer) Printer {
	return print.SequenceArgs(printers...)
}

func Intersperse(separator Printer, printers []Printer) Printer {
	return print.Intersperse(separator, printers)
}

func Bracket(begin, end, body Printer) Printer {
	return print.Bracket(begin, end, body)
}

// Unescaped writes s verbatim. Behaves like String; the name flags that the
// caller asserts s is already valid JSON syntax.
func Unescaped(s string) Printer {
	return String(s)
}

// Escape runs inner against an adapter sink that JSON-escapes every
// fragment before forwarding it to the real sink. The inner printer only
// needs the generic fragment capability, so arbitrary content can be built
// with the plain algebra and embedded safely as JSON string content.
// Escape does not add the surrounding quote characters.
func Escape(inner print.Printer[print.Sink]) Printer {
	return func(sink Sink) {
		inner.Run(print.SinkFunc(func(fragment string) {
			sink.Accept(escapeFragment(fragment))
		}))
	}
}

// Pair associates an object key with its value printer.
type Pair struct {
	Key   string
	Value Printer
}

// Array builds a JSON array from already-built value printers. Empty input
// yields "[]".
func Array(printers []Printer) Printer {
	return Bracket(Unescaped("["), Unescaped("]"), Intersperse(Unescaped(","), printers))
}

// Object builds a JSON object from key/value pairs. When the same key
// appears more than once only the first occurrence survives, and members
// appear in first-occurrence order. Keys go through the same escaping as
// values routed through Escape.
func Object(pairs []Pair) Printer {
	seen := mapset.NewSet[string]()
	members := make([]Printer, 0, len(pairs))
	for _, pair := range pairs {
		if !seen.Add(pair.Key) {
			continue
		}
		members = append(members, SequenceArgs(
			Unescaped(`"`+escapeFragment(pair.Key)+`":`),
			pair.Value,
		))
	}

	return Bracket(Unescaped("{"), Unescaped("}"), Intersperse(Unescaped(","), members))
}
