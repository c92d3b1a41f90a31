package browser

import (
	"bufio"
	"io"
)

// Key is a decoded, device-independent keystroke.
type Key int

const (
	KeyChar Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyEnter
	// KeyEscape is a lone Escape press, or an escape sequence the decoder
	// does not recognize. Views treat it as a no-op.
	KeyEscape
)

// Event is one logical input event. Ch is set only for KeyChar.
type Event struct {
	Key Key
	Ch  byte
}

// Decoder turns a raw-mode byte stream into logical key events. The input
// must deliver keys unbuffered and without echo; entering and restoring
// that terminal mode is the caller's responsibility.
type Decoder struct {
	br *bufio.Reader
}

// NewDecoder wraps r for key decoding.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{br: bufio.NewReader(r)}
}

// Next blocks for one keystroke and returns exactly one event.
//
// Escape sequences are followed only through bytes already buffered from
// the same read, so a lone Escape key decodes to KeyEscape instead of
// blocking on a continuation that never arrives.
func (d *Decoder) Next() (Event, error) {
	b, err := d.br.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case 0x1b:
		return d.escapeSequence(), nil
	case '\r', '\n':
		return Event{Key: KeyEnter}, nil
	default:
		return Event{Key: KeyChar, Ch: b}, nil
	}
}

func (d *Decoder) escapeSequence() Event {
	b, ok := d.nextBuffered()
	if !ok || b != '[' {
		return Event{Key: KeyEscape}
	}

	b, ok = d.nextBuffered()
	if !ok {
		return Event{Key: KeyEscape}
	}

	switch b {
	case 'A':
		return Event{Key: KeyUp}
	case 'B':
		return Event{Key: KeyDown}
	case '5', '6':
		// Page keys are ESC [ digit ~; the trailing tilde is consumed
		// and discarded.
		if t, ok := d.nextBuffered(); !ok || t != '~' {
			return Event{Key: KeyEscape}
		}
		if b == '5' {
			return Event{Key: KeyPageUp}
		}
		return Event{Key: KeyPageDown}
	default:
		return Event{Key: KeyEscape}
	}
}

// nextBuffered reads one byte only if it is already available without
// another blocking read.
func (d *Decoder) nextBuffered() (byte, bool) {
	if d.br.Buffered() == 0 {
		return 0, false
	}
	b, err := d.br.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}
