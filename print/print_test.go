package print_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejoffe/printkit/output/mocksink"
	"github.com/ejoffe/printkit/print"
)

func str(s string) print.Printer[print.Sink] {
	return print.String[print.Sink](s)
}

func TestStringWritesOneFragment(t *testing.T) {
	sink := mocksink.New()

	str("hello").Run(sink)

	require.Equal(t, []string{"hello"}, sink.Fragments())
}

func TestEmptyStringIsStillOneFragment(t *testing.T) {
	sink := mocksink.New()

	str("").Run(sink)

	require.Equal(t, []string{""}, sink.Fragments())
}

func TestNumber(t *testing.T) {
	sink := mocksink.New()

	print.SequenceArgs(
		print.Number[print.Sink](0),
		print.Number[print.Sink](42),
		print.Number[print.Sink](-7),
	).Run(sink)

	require.Equal(t, "042-7", sink.String())
}

func TestEmptySequenceWritesNothing(t *testing.T) {
	sink := mocksink.New()

	print.Sequence[print.Sink](nil).Run(sink)

	require.Empty(t, sink.Fragments())
}

func TestSequenceRunsInOrder(t *testing.T) {
	sink := mocksink.New()
	sink.ExpectString("a").ExpectString("b").ExpectString("c")

	print.Sequence([]print.Printer[print.Sink]{str("a"), str("b"), str("c")}).Run(sink)

	sink.ExpectationsMet()
}

func TestSequenceFlatteningEquivalence(t *testing.T) {
	a, b, c := str("a"), str("b"), str("c")

	nested := mocksink.New()
	print.Sequence([]print.Printer[print.Sink]{
		print.Sequence([]print.Printer[print.Sink]{a, b}),
		c,
	}).Run(nested)

	flat := mocksink.New()
	print.Sequence([]print.Printer[print.Sink]{a, b, c}).Run(flat)

	require.Equal(t, flat.String(), nested.String())
}

func TestSequenceArgsMatchesSequence(t *testing.T) {
	args := mocksink.New()
	print.SequenceArgs(str("x"), str("y")).Run(args)

	slice := mocksink.New()
	print.Sequence([]print.Printer[print.Sink]{str("x"), str("y")}).Run(slice)

	require.Equal(t, slice.Fragments(), args.Fragments())
}

func TestIntersperse(t *testing.T) {
	tests := []struct {
		name     string
		printers []print.Printer[print.Sink]
		expected string
	}{
		{
			name:     "empty",
			printers: nil,
			expected: "",
		},
		{
			name:     "single element has no separator",
			printers: []print.Printer[print.Sink]{str("a")},
			expected: "a",
		},
		{
			name:     "separator precedes every element but the first",
			printers: []print.Printer[print.Sink]{str("a"), str("b"), str("c")},
			expected: "a,b,c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocksink.New()
			print.Intersperse(str(","), tt.printers).Run(sink)
			require.Equal(t, tt.expected, sink.String())
		})
	}
}

func TestBracket(t *testing.T) {
	sink := mocksink.New()

	print.Bracket(str("<"), str(">"), str("body")).Run(sink)

	require.Equal(t, "<body>", sink.String())
}

func TestReplayDeterminism(t *testing.T) {
	printer := print.Bracket(str("("), str(")"),
		print.Intersperse(str(" "), []print.Printer[print.Sink]{str("a"), str("b")}))

	first := mocksink.New()
	printer.Run(first)

	second := mocksink.New()
	printer.Run(second)

	require.Equal(t, first.Fragments(), second.Fragments())
}

func TestSequenceCapturesInputEagerly(t *testing.T) {
	printers := []print.Printer[print.Sink]{str("a"), str("b")}
	printer := print.Sequence(printers)

	printers[0] = str("mutated")

	sink := mocksink.New()
	printer.Run(sink)

	require.Equal(t, "ab", sink.String())
}

func TestIntersperseCapturesInputEagerly(t *testing.T) {
	printers := []print.Printer[print.Sink]{str("a"), str("b")}
	printer := print.Intersperse(str(","), printers)

	printers[1] = str("mutated")

	sink := mocksink.New()
	printer.Run(sink)

	require.Equal(t, "a,b", sink.String())
}

func TestNilPrinterWritesNothing(t *testing.T) {
	sink := mocksink.New()

	var printer print.Printer[print.Sink]
	printer.Run(sink)

	require.Empty(t, sink.Fragments())
}

func TestSinkFuncForwardsFragments(t *testing.T) {
	fragments := []string{}
	sink := print.SinkFunc(func(fragment string) {
		fragments = append(fragments, fragment)
	})

	print.SequenceArgs(str("a"), str("b")).Run(sink)

	require.Equal(t, []string{"a", "b"}, fragments)
}
