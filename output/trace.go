package output

import (
	"github.com/rs/zerolog/log"

	"github.com/ejoffe/printkit/print/printjson"
	"github.com/ejoffe/printkit/print/printtext"
)

// TracedText wraps sink so every fragment is logged at debug level before
// being forwarded.
func TracedText(sink printtext.Sink) printtext.Sink {
	return &tracedText{sink: sink}
}

type tracedText struct {
	sink printtext.Sink
}

func (t *tracedText) Accept(fragment string) {
	log.Debug().Str("fragment", fragment).Msg("print text")
	t.sink.Accept(fragment)
}

func (t *tracedText) Text() {}

// TracedJSON wraps sink so every fragment is logged at debug level before
// being forwarded.
func TracedJSON(sink printjson.Sink) printjson.Sink {
	return &tracedJSON{sink: sink}
}

type tracedJSON struct {
	sink printjson.Sink
}

func (t *tracedJSON) Accept(fragment string) {
	log.Debug().Str("fragment", fragment).Msg("print json")
	t.sink.Accept(fragment)
}

func (t *tracedJSON) JSON() {}
