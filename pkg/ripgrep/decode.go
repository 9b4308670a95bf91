// decode.go parses one line of rg --json output into an Event.
//
// Separated from event.go to isolate wire concerns from the model. The
// decoder is stateless and pure: the same line always yields the same event
// or the same error.
//
// Design: two-pass decode via an envelope. The "type" discriminator is read
// first, then "data" (kept as json.RawMessage) is unmarshalled into the
// matching variant. Unknown discriminators fail rather than mapping to a
// catch-all - the union is closed.

package ripgrep

import (
	"encoding/json"
	"fmt"
)

// eventEnvelope is the outer shape of every wire event.
type eventEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// DecodeLine parses exactly one newline-delimited JSON event.
//
// Returns a *DecodeError when the line is not valid JSON, carries an
// unknown "type", or its payload does not match the variant's shape.
// Absent optional fields stay absent (nil pointers); a line whose content
// is not valid UTF-8 arrives with Lines.Bytes set and Lines.Text nil.
func DecodeLine(line []byte) (Event, error) {
	var env eventEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, &DecodeError{Line: string(line), Err: err}
	}
	if len(env.Data) == 0 {
		return nil, &DecodeError{Line: string(line), Err: fmt.Errorf("event type %q has no data payload", env.Type)}
	}

	var ev Event
	switch EventKind(env.Type) {
	case KindBegin:
		ev = &Begin{}
	case KindMatch:
		ev = &Match{}
	case KindContext:
		ev = &Context{}
	case KindEnd:
		ev = &End{}
	case KindSummary:
		ev = &Summary{}
	default:
		return nil, &DecodeError{Line: string(line), Err: fmt.Errorf("unknown event type %q", env.Type)}
	}

	if err := json.Unmarshal(env.Data, ev); err != nil {
		return nil, &DecodeError{Line: string(line), Err: err}
	}
	return ev, nil
}
