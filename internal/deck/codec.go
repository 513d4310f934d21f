package deck

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrFieldTooLarge reports a field whose decoded content does not fit in the
// codec's per-field buffer. The whole parse is abandoned when it occurs.
var ErrFieldTooLarge = errors.New("field too large")

const (
	DefaultDelimiter    = ','
	DefaultMaxFieldSize = 1024

	// starredMarker is the only star indicator ever written.
	starredMarker = "starred"
)

// Codec converts between delimited text lines and cards.
// The zero value uses DefaultDelimiter and DefaultMaxFieldSize.
type Codec struct {
	Delimiter    rune
	MaxFieldSize int
}

// DefaultCodec returns a comma separated codec with a 1024 byte field ceiling.
func DefaultCodec() Codec {
	return Codec{Delimiter: DefaultDelimiter, MaxFieldSize: DefaultMaxFieldSize}
}

func (c Codec) delimiter() rune {
	if c.Delimiter == 0 {
		return DefaultDelimiter
	}
	return c.Delimiter
}

func (c Codec) maxFieldSize() int {
	if c.MaxFieldSize <= 0 {
		return DefaultMaxFieldSize
	}
	return c.MaxFieldSize
}

// Parse reads one card per non-blank line. Fields are tokenized straight off
// the reader into a fixed buffer, so memory use is bounded by MaxFieldSize no
// matter how long a line or how large the deck is.
func (c Codec) Parse(r io.Reader) ([]Card, error) {
	t := &tokenizer{
		r:     bufio.NewReader(r),
		delim: []byte(string(c.delimiter())),
		buf:   make([]byte, 0, c.maxFieldSize()),
	}

	var cards []Card
	for lineNo := 1; ; lineNo++ {
		var part partialCard
		more, err := t.readLine(part.fill)
		if errors.Is(err, ErrFieldTooLarge) {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err != nil {
			return nil, fmt.Errorf("read deck: %w", err)
		}
		if part.n > 0 {
			cards = append(cards, part.card)
		}
		if !more {
			return cards, nil
		}
	}
}

// Write emits front, back and, for starred cards, the starred marker. Sink
// errors are returned unchanged.
func (c Codec) Write(w io.Writer, cards []Card) error {
	cw := csv.NewWriter(w)
	cw.Comma = c.delimiter()

	record := make([]string, 0, 3)
	for _, card := range cards {
		record = append(record[:0], card.Front, card.Back)
		if card.Starred {
			record = append(record, starredMarker)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// partialCard assigns tokens by position: front, back, star indicator.
type partialCard struct {
	card Card
	n    int
}

func (p *partialCard) fill(field []byte) {
	switch p.n {
	case 0:
		p.card.Front = strings.ToValidUTF8(string(field), "\uFFFD")
	case 1:
		p.card.Back = strings.ToValidUTF8(string(field), "\uFFFD")
	case 2:
		p.card.Starred = isTruthy(field)
	}
	p.n++
}

func isTruthy(field []byte) bool {
	if !utf8.Valid(field) {
		return false
	}
	s := strings.TrimSpace(string(field))
	return s == "1" ||
		strings.EqualFold(s, "true") ||
		len(s) >= 4 && strings.EqualFold(s[:4], "star")
}

type fieldState int

const (
	fieldStart fieldState = iota
	fieldUnquoted
	fieldQuoted
	fieldQuoteSeen
)

type tokenizer struct {
	r     *bufio.Reader
	delim []byte
	buf   []byte
}

// readLine tokenizes one line. Each decoded field is copied into buf and
// handed to emit; buf is reused and never grows past its capacity. A line
// holding only its terminator yields no fields. more is false once the
// input is exhausted.
func (t *tokenizer) readLine(emit func([]byte)) (more bool, err error) {
	field := t.buf[:0]
	state := fieldStart
	started := false
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			if started {
				emit(field)
			}
			return false, nil
		}
		if err != nil {
			return false, err
		}

		// CR before LF or end of input belongs to the terminator.
		if b == '\r' {
			next, perr := t.r.Peek(1)
			if perr == io.EOF || perr == nil && next[0] == '\n' {
				continue
			}
		}
		if b == '\n' {
			if started {
				emit(field)
			}
			return true, nil
		}
		started = true

		if state != fieldQuoted && b == t.delim[0] && t.restOfDelim() {
			emit(field)
			field = t.buf[:0]
			state = fieldStart
			continue
		}

		switch state {
		case fieldStart:
			if b == '"' {
				state = fieldQuoted
				continue
			}
			state = fieldUnquoted
		case fieldQuoted:
			if b == '"' {
				state = fieldQuoteSeen
				continue
			}
		case fieldQuoteSeen:
			// "" inside quotes is a literal quote; anything else after the
			// closing quote is kept verbatim up to the next delimiter.
			if b == '"' {
				state = fieldQuoted
			} else {
				state = fieldUnquoted
			}
		}
		if len(field) == cap(field) {
			return false, ErrFieldTooLarge
		}
		field = append(field, b)
	}
}

// restOfDelim consumes the remaining bytes of a multi-byte delimiter whose
// first byte was just read.
func (t *tokenizer) restOfDelim() bool {
	if len(t.delim) == 1 {
		return true
	}
	rest, err := t.r.Peek(len(t.delim) - 1)
	if err != nil || !bytes.Equal(rest, t.delim[1:]) {
		return false
	}
	_, _ = t.r.Discard(len(rest))
	return true
}
