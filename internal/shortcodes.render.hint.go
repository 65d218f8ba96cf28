package internal

// HeaderHint is the stylesheet emitted before the first hint block
const HeaderHint = `<style>
.sc-hint { border-left: 4px solid #6bf; padding: 0.5rem 1rem; margin: 1rem 0; }
.sc-hint.ok { border-color: #5b5; }
.sc-hint.warning { border-color: #fd6; }
.sc-hint.danger { border-color: #f66; }
</style>
`

// HintKinds lists the accepted hint kinds
var HintKinds = []string{HintInfo, HintOK, HintWarning, HintDanger}

// IsHintKind reports whether kind is an accepted hint kind
func IsHintKind(kind string) bool {
	for _, k := range HintKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// NewHintRenderer renders a hint callout. Exactly one attribute, the kind, is required.
func NewHintRenderer(inner Formatter) RenderFunc {
	return func(content string, attrs []string, _ int) (string, error) {
		if len(attrs) != 1 {
			return "", NewInvalidAttributeCountError(DirectiveHint, attrs)
		}
		kind := attrs[0]
		if !IsHintKind(kind) {
			return "", NewUnknownHintKindError(kind)
		}

		body, err := inner(content)
		if err != nil {
			return "", NewRenderFailedError(DirectiveHint, err)
		}
		return `<blockquote class="` + ClassHint + ` ` + kind + `">` + body + `</blockquote>`, nil
	}
}
