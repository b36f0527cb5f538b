// Package printtext instantiates the print algebra for plain, unescaped
// text emission.
package printtext

import "github.com/ejoffe/printkit/print"

// Sink accepts raw text fragments. The Text marker keeps text sinks
// nominally distinct from JSON sinks, so a printer built for one capability
// cannot be run against the other.
type Sink interface {
	print.Sink
	Text()
}

// Printer emits plain text to a Sink.
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
