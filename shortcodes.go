// Package shortcodes provides a directive substitution engine for mdBook.
//
// Directives are inline markers in a chapter's Markdown. Each one is replaced
// by an HTML fragment:
//
//	{{< hint warning >}}
//	Mind the gap.
//	{{< /hint >}}
//
// # Basic Usage
//
// Create an engine and process a document:
//
//	engine := shortcodes.MustNew()
//	html, err := engine.Process(markdown)
//
// # Directives
//
// Directives are applied in a fixed order, one pass per kind, each pass
// reading the output of the previous one. Directives of different kinds may
// therefore be nested; directives of the same kind may not.
//
// columns - side-by-side columns separated by <--->, optional spacing:
//
//	{{< columns 2rem >}}
//	Left
//	<--->
//	Right
//	{{< /columns >}}
//
// hint - a callout, one of info, ok, warning, danger:
//
//	{{< hint info >}}Note{{< /hint >}}
//
// tabs - a tab strip made of tab sub-markers, optional group id:
//
//	{{< tabs "os" >}}
//	{{< tab "Linux" >}}apt install{{< /tab >}}
//	{{< tab "macOS" >}}brew install{{< /tab >}}
//	{{< /tabs >}}
//
// details - a disclosure widget with optional title and open flag:
//
//	{{< details "More" open >}}Hidden text{{< /details >}}
//
// Attributes are whitespace separated; quote them with ' or " to include
// whitespace. Each directive kind emits a small stylesheet once per document
// in which it occurs.
//
// # Error Handling
//
// Errors are returned, never raised. They match the sentinels with errors.Is
// and carry directive, line and column metadata:
//
//	_, err := engine.Process(doc)
//	if errors.Is(err, shortcodes.ErrNoClosingDirective) {
//	    // ...
//	}
//
// # mdBook
//
// ReadPreprocessorInput, Engine.ProcessBook and WriteBook implement the
// mdBook preprocessor protocol; see cmd/mdbook-shortcodes.
package shortcodes
