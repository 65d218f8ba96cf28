package internal

import "html"

// HeaderDetails is the stylesheet emitted before the first details block
const HeaderDetails = `<style>
.sc-details { margin: 1rem 0; }
.sc-details > summary { cursor: pointer; font-weight: bold; }
</style>
`

// NewDetailsRenderer renders a disclosure widget.
//
// Attributes are positional: an optional title, then an optional "open"
// flag. Without a title the summary reads "Details".
func NewDetailsRenderer(inner Formatter) RenderFunc {
	return func(content string, attrs []string, _ int) (string, error) {
		if len(attrs) > 2 {
			return "", NewInvalidAttributeCountError(DirectiveDetails, attrs)
		}

		title := DetailsDefaultTitle
		open := false
		if len(attrs) >= 1 {
			title = attrs[0]
		}
		if len(attrs) == 2 {
			if attrs[1] != DetailsFlagOpen {
				return "", NewUnknownAttributeValueError(DirectiveDetails, attrs[1])
			}
			open = true
		}

		body, err := inner(content)
		if err != nil {
			return "", NewRenderFailedError(DirectiveDetails, err)
		}

		openAttr := ""
		if open {
			openAttr = " " + DetailsFlagOpen
		}
		return `<details class="` + ClassDetails + `"` + openAttr + `><summary>` +
			html.EscapeString(title) + `</summary>` + body + `</details>`, nil
	}
}
