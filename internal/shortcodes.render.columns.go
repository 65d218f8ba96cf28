package internal

import (
	"html"
	"strings"
)

// HeaderColumns is the stylesheet emitted before the first columns block
const HeaderColumns = `<style>
.sc-columns { display: flex; flex-wrap: wrap; gap: 1rem; }
.sc-columns > .sc-column { flex: 1 1 0; min-width: 0; }
</style>
`

// NewColumnsRenderer renders a columns block. The body is split on "<--->"
// and each part becomes a column. An optional single attribute overrides the
// spacing between columns.
func NewColumnsRenderer(inner Formatter) RenderFunc {
	return func(content string, attrs []string, _ int) (string, error) {
		if len(attrs) > 1 {
			return "", NewInvalidAttributeCountError(DirectiveColumns, attrs)
		}

		var containerStyle, columnStyle string
		if len(attrs) == 1 {
			spacing := html.EscapeString(attrs[0])
			containerStyle = ` style="gap: ` + spacing + `;"`
			columnStyle = ` style="padding: 0 ` + spacing + `;"`
		}

		var sb strings.Builder
		sb.WriteString(`<div class="` + ClassColumns + `"` + containerStyle + `>`)
		for _, column := range strings.Split(content, StrColumnSeparator) {
			body, err := inner(column)
			if err != nil {
				return "", NewRenderFailedError(DirectiveColumns, err)
			}
			sb.WriteString(`<div class="` + ClassColumn + `"` + columnStyle + `>`)
			sb.WriteString(body)
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div>`)
		return sb.String(), nil
	}
}
