package bytestring

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"bytestring/utf8chunk"
)

// Alignment selects where Display padding goes. AlignNone disables padding
// entirely: width and fill are ignored.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// DefaultFill pads Display output when Options.Fill is unset.
const DefaultFill = ' '

// Options

// Options is the formatting request consumed by a Display render: where to
// pad, how wide the output must at least be, and which scalar to pad with.
// Width counts visible characters: one per decoded scalar plus one per
// undecodable run, never bytes or display columns.
type Options struct {
	Align Alignment
	Width int
	Fill  rune
}

// DefaultOptions renders the unpadded form.
var DefaultOptions = Options{Align: AlignNone, Fill: DefaultFill}

// writeRune encodes r as UTF-8 into w.
func writeRune(w io.Writer, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err := w.Write(buf[:n])
	return err
}

// writeEscapedByte emits the ASCII-escape form of b: the short escapes for
// tab, newline, carriage return, backslash and both quotes, printable ASCII
// verbatim, and \xNN lower-case hex for everything else.
func writeEscapedByte(w io.Writer, b byte) error {
	var esc string
	switch b {
	case '\t':
		esc = `\t`
	case '\r':
		esc = `\r`
	case '\n':
		esc = `\n`
	case '\\':
		esc = `\\`
	case '\'':
		esc = `\'`
	case '"':
		esc = `\"`
	default:
		if b >= 0x20 && b <= 0x7E {
			_, err := w.Write([]byte{b})
			return err
		}
		_, err := fmt.Fprintf(w, `\x%02x`, b)
		return err
	}
	_, err := io.WriteString(w, esc)
	return err
}

// writeEscapedRune emits the Debug form of one decoded scalar: \0 for NUL,
// the ASCII-escape form for the rest of the ASCII range, printable scalars
// verbatim, and \u{HEX} with minimal lower-case digits otherwise.
func writeEscapedRune(w io.Writer, r rune) error {
	switch {
	case r == 0:
		_, err := io.WriteString(w, `\0`)
		return err
	case r <= 0x7F:
		return writeEscapedByte(w, byte(r))
	case strconv.IsPrint(r):
		return writeRune(w, r)
	default:
		_, err := fmt.Fprintf(w, `\u{%x}`, r)
		return err
	}
}

// WriteDebug renders the view as a quoted single-line token: every decoded
// scalar of each valid run is escaped per writeEscapedRune, every byte of
// each undecodable run per writeEscapedByte. Invalid bytes are never
// replaced, so the output identifies the underlying bytes exactly. Writer
// failures abort the render and are returned unchanged.
func (s BStr) WriteDebug(w io.Writer) error {
	if _, err := io.WriteString(w, `"`); err != nil {
		return err
	}
	it := utf8chunk.Iterate(s)
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		valid := c.Valid()
		for len(valid) > 0 {
			r, size := utf8.DecodeRune(valid)
			valid = valid[size:]
			if err := writeEscapedRune(w, r); err != nil {
				return err
			}
		}
		for _, b := range c.Invalid() {
			if err := writeEscapedByte(w, b); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, `"`)
	return err
}

// Debug renders the view per WriteDebug into a string.
func (s BStr) Debug() string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	s.WriteDebug(&sb)
	return sb.String()
}

// writeDisplayTo emits the unpadded Display form: valid runs verbatim, one
// replacement character per undecodable run regardless of its length.
func writeDisplayTo(w io.Writer, b []byte) error {
	it := utf8chunk.Iterate(b)
	for {
		c, ok := it.Next()
		if !ok {
			return nil
		}
		if _, err := w.Write(c.Valid()); err != nil {
			return err
		}
		if len(c.Invalid()) > 0 {
			if err := writeRune(w, ReplacementChar); err != nil {
				return err
			}
		}
	}
}

// displayWidth is the visible length of the unpadded Display form: one unit
// per decoded scalar plus one per undecodable run. Combining marks, wide
// characters, and zero-width characters each count as one.
func displayWidth(b []byte) int {
	n := 0
	it := utf8chunk.Iterate(b)
	for {
		c, ok := it.Next()
		if !ok {
			return n
		}
		n += utf8.RuneCount(c.Valid())
		if len(c.Invalid()) > 0 {
			n++
		}
	}
}

// WriteDisplay renders the view as readable text per opts. With AlignNone
// the unpadded form is emitted directly. Otherwise the output is padded
// with opts.Fill to at least opts.Width visible characters; center
// alignment puts the odd leftover fill on the right. Writer failures abort
// the render and are returned unchanged.
func (s BStr) WriteDisplay(w io.Writer, opts Options) error {
	if opts.Align == AlignNone {
		return writeDisplayTo(w, s)
	}

	fill := opts.Fill
	if fill == 0 {
		fill = DefaultFill
	}
	pad := opts.Width - displayWidth(s)
	if pad < 0 {
		pad = 0
	}
	var lpad, rpad int
	switch opts.Align {
	case AlignLeft:
		rpad = pad
	case AlignRight:
		lpad = pad
	case AlignCenter:
		lpad = pad / 2
		rpad = pad/2 + pad%2
	}

	for i := 0; i < lpad; i++ {
		if err := writeRune(w, fill); err != nil {
			return err
		}
	}
	if err := writeDisplayTo(w, s); err != nil {
		return err
	}
	for i := 0; i < rpad; i++ {
		if err := writeRune(w, fill); err != nil {
			return err
		}
	}
	return nil
}

// String renders the unpadded Display form.
func (s BStr) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	writeDisplayTo(&sb, s)
	return sb.String()
}

// Format implements fmt.Formatter. %s and %v render the Display form; a
// width flag pads right-aligned with spaces, matching fmt's convention, and
// the '-' flag pads left-aligned. %q renders the Debug form. Center
// alignment and custom fills are only reachable through WriteDisplay, since
// fmt verbs carry neither.
func (s BStr) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		s.WriteDebug(f)
	case 's', 'v':
		opts := Options{Align: AlignNone}
		if w, ok := f.Width(); ok {
			opts.Width = w
			if f.Flag('-') {
				opts.Align = AlignLeft
			} else {
				opts.Align = AlignRight
			}
		}
		s.WriteDisplay(f, opts)
	default:
		fmt.Fprintf(f, "%%!%c(bytestring.BStr=%s)", verb, s.String())
	}
}

// Rendering on the owned buffer delegates to a projection of its contents.

// WriteDebug renders the buffer per BStr.WriteDebug.
func (s *BString) WriteDebug(w io.Writer) error {
	return s.BStr().WriteDebug(w)
}

// Debug renders the buffer per BStr.Debug.
func (s *BString) Debug() string {
	return s.BStr().Debug()
}

// WriteDisplay renders the buffer per BStr.WriteDisplay.
func (s *BString) WriteDisplay(w io.Writer, opts Options) error {
	return s.BStr().WriteDisplay(w, opts)
}

// String renders the buffer's unpadded Display form.
func (s *BString) String() string {
	return s.BStr().String()
}

// Format implements fmt.Formatter per BStr.Format.
func (s *BString) Format(f fmt.State, verb rune) {
	s.BStr().Format(f, verb)
}
