// Package print is a printer-combinator core: it builds immutable,
// replayable descriptions of text emission that are only executed once a
// concrete sink is supplied. Profiles instantiate the algebra for a
// specific sink capability; see printtext and printjson.
package print

import (
	"slices"
	"strconv"
)

// Sink is the capability a printer requires of its destination: accept
// string fragments, in order. Fragment acceptance is assumed infallible at
// this layer; failures are the sink implementation's concern.
type Sink interface {
	Accept(fragment string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(fragment string)

func (f SinkFunc) Accept(fragment string) {
	f(fragment)
}

// Printer is a deferred emission action against a sink of capability S.
// Printers are built with the combinators below, capture their inputs at
// construction time, and may be run any number of times with identical
// output. Construction performs no I/O.
type Printer[S Sink] func(sink S)

// Run executes the printer against sink. A nil printer writes nothing.
func (p Printer[S]) Run(sink S) {
	if p != nil {
		p(sink)
	}
}

// String returns a printer that writes s to the sink as a single fragment.
// The empty string is valid and is still delivered as one fragment.
func String[S Sink](s string) Printer[S] {
	return func(sink S) {
		sink.Accept(s)
	}
}

// Number returns a printer that writes n in base 10.
func Number[S Sink](n int) Printer[S] {
	return String[S](strconv.Itoa(n))
}

// Sequence returns a printer that runs each printer in order against the
// same sink. The input slice is copied, so mutating it afterwards cannot
// change what a run emits. Sequence(nil) writes nothing.
func Sequence[S Sink](printers []Printer[S]) Printer[S] {
	ps := slices.Clone(printers)
	return func(sink S) {
		for _, p := range ps {
			p.Run(sink)
		}
	}
}

// SequenceArgs is Sequence over a fixed argument list.
func SequenceArgs[S Sink](printers ...Printer[S]) Printer[S] {
	return Sequence(printers)
}

// Intersperse returns a printer that runs each printer in order, running
// separator before every element except the first. Zero elements emit
// nothing and the separator is never run for a single element.
func Intersperse[S Sink](separator Printer[S], printers []Printer[S]) Printer[S] {
	ps := slices.Clone(printers)
	return func(sink S) {
		for i, p := range ps {
			if i > 0 {
				separator.Run(sink)
			}
			p.Run(sink)
		}
	}
}

// Bracket wraps body between begin and end.
func Bracket[S Sink](begin, end, body Printer[S]) Printer[S] {
	return SequenceArgs(begin, body, end)
}
