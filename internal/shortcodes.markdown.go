package internal

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Formatter transforms a directive body before a renderer wraps it
type Formatter func(body string) (string, error)

// IdentityFormatter returns the body unchanged
func IdentityFormatter(body string) (string, error) {
	return body, nil
}

// NewMarkdownFormatter returns a Formatter that renders bodies from Markdown
// to HTML. Raw HTML is passed through so markup produced by earlier passes
// survives, and directive markers are left verbatim for later passes.
func NewMarkdownFormatter() Formatter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, MarkerPassthrough),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return func(body string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(body), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

// Parser priorities, ahead of every goldmark builtin
const (
	markerBlockPriority  = 50
	markerInlinePriority = 50
)

type markerPassthrough struct{}

// MarkerPassthrough is a goldmark extension that emits directive markers
// ({{< name ... >}} and {{< /name >}}) as raw HTML. A line holding only a
// marker becomes an HTML block; a marker inside text becomes inline raw HTML.
var MarkerPassthrough goldmark.Extender = &markerPassthrough{}

func (e *markerPassthrough) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(&markerBlockParser{}, markerBlockPriority)),
		parser.WithInlineParsers(util.Prioritized(&markerInlineParser{}, markerInlinePriority)),
	)
}

// markerLen returns the length of the marker at the start of b, or 0
func markerLen(b []byte) int {
	if !bytes.HasPrefix(b, []byte(StrOpenDelim)) {
		return 0
	}
	end := bytes.Index(b[len(StrOpenDelim):], []byte(StrAttrsClose))
	if end < 0 {
		return 0
	}
	return len(StrOpenDelim) + end + len(StrAttrsClose)
}

type markerBlockParser struct{}

func (b *markerBlockParser) Trigger() []byte {
	return []byte{StrOpenDelim[0]}
}

func (b *markerBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}
	rest := line[pos:]
	n := markerLen(rest)
	if n == 0 || len(bytes.TrimSpace(rest[n:])) != 0 {
		return nil, parser.NoChildren
	}

	node := ast.NewHTMLBlock(ast.HTMLBlockType7)
	node.Lines().Append(segment)
	reader.Advance(segment.Len() - 1)
	return node, parser.NoChildren
}

func (b *markerBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (b *markerBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (b *markerBlockParser) CanInterruptParagraph() bool {
	return true
}

func (b *markerBlockParser) CanAcceptIndentedLine() bool {
	return false
}

type markerInlineParser struct{}

func (p *markerInlineParser) Trigger() []byte {
	return []byte{StrOpenDelim[0]}
}

func (p *markerInlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()
	n := markerLen(line)
	if n == 0 {
		return nil
	}

	node := ast.NewRawHTML()
	node.Segments.Append(segment.WithStop(segment.Start + n))
	block.Advance(n)
	return node
}
