package internal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position represents a location in a document
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number, counted in runes
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) into a document
type Span struct {
	Start int
	End   int
}

// Slice returns the text covered by the span
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// Len returns the span length in bytes
func (s Span) Len() int {
	return s.End - s.Start
}

// Occurrence is one located directive instance. All offsets index the
// document the occurrence was found in.
type Occurrence struct {
	Name    string
	Start   int  // Offset of the open delimiter
	Attrs   Span // Raw attribute text between the name and the attrs close
	Content Span // Body between the open marker and the close marker
	End     int  // Offset just past the close marker
}

// Match returns the full matched region, open marker through close marker
func (o Occurrence) Match() Span {
	return Span{Start: o.Start, End: o.End}
}

// FindOccurrence locates the first occurrence of the named directive at or
// after from. It returns found=false when no open marker remains. An open
// marker without an attrs close or without a close marker is an error.
// Same-name directives do not nest: the first close marker ends the match.
func FindOccurrence(text string, from int, name string) (Occurrence, bool, error) {
	start, nameEnd, ok := findOpenMarker(text, from, name)
	if !ok {
		return Occurrence{}, false, nil
	}

	attrsClose := strings.Index(text[nameEnd:], StrAttrsClose)
	if attrsClose < 0 {
		return Occurrence{}, false, NewNoClosingDirectiveError(name, calculatePosition(text, start))
	}
	attrsEnd := nameEnd + attrsClose
	contentStart := attrsEnd + len(StrAttrsClose)

	closeStart, closeEnd, ok := findCloseMarker(text, contentStart, name)
	if !ok {
		return Occurrence{}, false, NewNoClosingDirectiveError(name, calculatePosition(text, start))
	}

	return Occurrence{
		Name:    name,
		Start:   start,
		Attrs:   Span{Start: nameEnd, End: attrsEnd},
		Content: Span{Start: contentStart, End: closeStart},
		End:     closeEnd,
	}, true, nil
}

// findOpenMarker finds "{{<" name at or after from, where the name is followed
// by whitespace or the attrs close. It returns the delimiter offset and the
// offset just past the name.
func findOpenMarker(text string, from int, name string) (int, int, bool) {
	for from < len(text) {
		idx := strings.Index(text[from:], StrOpenDelim)
		if idx < 0 {
			return 0, 0, false
		}
		start := from + idx
		p := skipSpace(text, start+len(StrOpenDelim))
		if strings.HasPrefix(text[p:], name) && endsName(text, p+len(name)) {
			return start, p + len(name), true
		}
		from = start + len(StrOpenDelim)
	}
	return 0, 0, false
}

// findCloseMarker finds "{{<" "/" name ">}}" at or after from, allowing
// whitespace around the slash and before the attrs close.
func findCloseMarker(text string, from int, name string) (int, int, bool) {
	for from < len(text) {
		idx := strings.Index(text[from:], StrOpenDelim)
		if idx < 0 {
			return 0, 0, false
		}
		start := from + idx
		from = start + len(StrOpenDelim)

		p := skipSpace(text, from)
		if !strings.HasPrefix(text[p:], StrCloseMarker) {
			continue
		}
		p = skipSpace(text, p+len(StrCloseMarker))
		if !strings.HasPrefix(text[p:], name) {
			continue
		}
		p = skipSpace(text, p+len(name))
		if strings.HasPrefix(text[p:], StrAttrsClose) {
			return start, p + len(StrAttrsClose), true
		}
	}
	return 0, 0, false
}

// endsName reports whether offset p is a name boundary
func endsName(text string, p int) bool {
	if p >= len(text) {
		return true
	}
	if strings.HasPrefix(text[p:], StrAttrsClose) {
		return true
	}
	ch, _ := utf8.DecodeRuneInString(text[p:])
	return unicode.IsSpace(ch)
}

// skipSpace returns the offset of the first non-whitespace rune at or after p
func skipSpace(text string, p int) int {
	for p < len(text) {
		ch, size := utf8.DecodeRuneInString(text[p:])
		if !unicode.IsSpace(ch) {
			break
		}
		p += size
	}
	return p
}

// calculatePosition calculates the Position of byte offset in text
func calculatePosition(text string, offset int) Position {
	pos := Position{
		Offset: offset,
		Line:   1,
		Column: 1,
	}

	for _, ch := range text[:offset] {
		if ch == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
