package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
	FontTall   = 0x01
)

const DefaultCharWidth = 32

// Most receipt printers only carry a single-byte code page.
var asciiReplacer = strings.NewReplacer(
	"₹", "Rs.",
	"–", "-",
	"—", "-",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Sanitize maps text onto printable ASCII.
func Sanitize(s string) string {
	s = asciiReplacer.Replace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteByte(' ')
		case r >= 0x20 && r < 0x7F:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Document builds an ESC/POS byte stream.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates a document for paper holding charWidth characters per
// line (32 for 58mm, 48 for 80mm).
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = DefaultCharWidth
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

func (d *Document) Width() int { return d.width }

func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes s wrapped to the paper width.
func (d *Document) Text(s string) *Document {
	for _, line := range wrap(Sanitize(s), d.width) {
		d.buf.WriteString(line)
		d.buf.WriteByte(LF)
	}
	return d
}

func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Centered writes s centered, then restores left alignment.
func (d *Document) Centered(s string) *Document {
	return d.SetAlign(AlignCenter).Text(s).SetAlign(AlignLeft)
}

func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints key left and value right on one line. A value that does
// not fit moves to its own right-aligned line.
func (d *Document) KeyValue(key, value string) *Document {
	key, value = Sanitize(key), Sanitize(value)
	if len(key)+len(value)+1 > d.width {
		d.Text(key)
		d.buf.WriteString(padLeft(value, d.width))
		d.buf.WriteByte(LF)
		return d
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", d.width-len(key)-len(value)))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints "qty x name" with the total right aligned on the last
// line of the wrapped name.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	total = Sanitize(total)
	prefix := fmt.Sprintf("%dx ", qty)
	room := d.width - len(prefix) - len(total) - 1
	if room < 8 {
		room = 8
	}
	lines := wrap(Sanitize(name), room)
	for i, line := range lines {
		lead := strings.Repeat(" ", len(prefix))
		if i == 0 {
			lead = prefix
		}
		if i < len(lines)-1 {
			d.buf.WriteString(lead + line)
			d.buf.WriteByte(LF)
			continue
		}
		d.KeyValue(lead+line, total)
	}
	return d
}

func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// wrap breaks s on spaces into lines of at most width bytes. Words longer
// than width are split.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur string
	for _, w := range words {
		for len(w) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, w[:width])
			w = w[width:]
		}
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
