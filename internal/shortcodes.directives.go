package internal

// RenderFunc turns one occurrence's body and attributes into markup. index
// is the occurrence's ordinal among the same kind in the document, from 0.
// Renderers never re-enter the rewriter.
type RenderFunc func(content string, attrs []string, index int) (string, error)

// Descriptor is the static identity of one directive kind
type Descriptor struct {
	Name   string
	Header string // Emitted once per document, only when the kind matched
	Render RenderFunc
}

// Builtins returns the descriptors of every directive kind in pipeline order:
// columns, hint, tabs, details. Bodies are passed through inner before they
// are wrapped; a nil inner leaves them unchanged.
func Builtins(inner Formatter) []Descriptor {
	if inner == nil {
		inner = IdentityFormatter
	}
	return []Descriptor{
		{Name: DirectiveColumns, Header: HeaderColumns, Render: NewColumnsRenderer(inner)},
		{Name: DirectiveHint, Header: HeaderHint, Render: NewHintRenderer(inner)},
		{Name: DirectiveTabs, Header: HeaderTabs, Render: NewTabsRenderer(inner)},
		{Name: DirectiveDetails, Header: HeaderDetails, Render: NewDetailsRenderer(inner)},
	}
}

// BuiltinNames returns the directive names in pipeline order
func BuiltinNames() []string {
	return []string{DirectiveColumns, DirectiveHint, DirectiveTabs, DirectiveDetails}
}

// IsBuiltin reports whether name identifies a directive kind
func IsBuiltin(name string) bool {
	for _, n := range BuiltinNames() {
		if n == name {
			return true
		}
	}
	return false
}
