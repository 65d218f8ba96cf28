package internal

import (
	"errors"
	"fmt"
	"hash/fnv"
	"html"
	"strconv"
	"strings"
)

// HeaderTabs is the stylesheet emitted before the first tabs block
const HeaderTabs = `<style>
.sc-tabs { display: flex; flex-wrap: wrap; margin: 1rem 0; }
.sc-tabs > label { padding: 0.5rem 1rem; cursor: pointer; }
.sc-tabs > .sc-tabs-toggle { display: none; }
.sc-tabs > .sc-tabs-panel { order: 999; width: 100%; display: none; }
.sc-tabs > .sc-tabs-toggle:checked + label { font-weight: bold; }
.sc-tabs > .sc-tabs-toggle:checked + label + .sc-tabs-panel { display: block; }
</style>
`

// Tab is one labeled panel of a tabs block
type Tab struct {
	Label string
	Body  string
}

// ParseTabs collects the tab sub-markers of a tabs body in order. Text
// outside the sub-markers is dropped. Each tab takes exactly one attribute,
// its label.
func ParseTabs(content string) ([]Tab, error) {
	var tabs []Tab
	cursor := 0
	for {
		occ, found, err := FindOccurrence(content, cursor, DirectiveTab)
		if err != nil {
			return nil, relocate(err)
		}
		if !found {
			return tabs, nil
		}

		attrs, err := TokenizeAttributes(occ.Attrs.Slice(content))
		if err != nil {
			return nil, relocate(err)
		}
		if len(attrs) != 1 {
			return nil, NewInvalidAttributeCountError(DirectiveTab, attrs)
		}

		tabs = append(tabs, Tab{Label: attrs[0], Body: occ.Content.Slice(content)})
		cursor = occ.End
	}
}

// NewTabsRenderer renders a CSS-only tab strip. The single optional attribute
// names the tab group; without it the group id is derived from the body and
// the block's index, so identical blocks in one document stay independent.
func NewTabsRenderer(inner Formatter) RenderFunc {
	return func(content string, attrs []string, index int) (string, error) {
		if len(attrs) > 1 {
			return "", NewInvalidAttributeCountError(DirectiveTabs, attrs)
		}

		tabs, err := ParseTabs(content)
		if err != nil {
			return "", err
		}

		id := tabsID(content, index)
		if len(attrs) == 1 {
			id = attrs[0]
		}
		id = html.EscapeString(id)

		var sb strings.Builder
		sb.WriteString(`<div class="` + ClassTabs + `">`)
		for i, tab := range tabs {
			body, err := inner(tab.Body)
			if err != nil {
				return "", NewRenderFailedError(DirectiveTabs, err)
			}

			inputID := fmt.Sprintf(TabsInputIDFormat, id, i)
			checked := ""
			if i == 0 {
				checked = ` checked="checked"`
			}
			sb.WriteString(`<input type="radio" class="` + ClassTabsToggle + `" name="` + id +
				`" id="` + inputID + `"` + checked + ` />`)
			sb.WriteString(`<label for="` + inputID + `">` + html.EscapeString(tab.Label) + `</label>`)
			sb.WriteString(`<div class="` + ClassTabsPanel + `">` + body + `</div>`)
		}
		sb.WriteString(`</div>`)
		return sb.String(), nil
	}
}

// tabsID derives a group id from the tabs body and the block's index. It is
// stable across builds of an unchanged document.
func tabsID(content string, index int) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(content))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(index)))
	return TabsIDPrefix + fmt.Sprintf(TabsIDHexFormat, h.Sum32())
}

// relocate drops a body-relative position so the rewriter reports the
// enclosing directive's position instead.
func relocate(err error) error {
	var de *DirectiveError
	if errors.As(err, &de) {
		de.Position = Position{}
	}
	return err
}
