package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins_Order(t *testing.T) {
	descriptors := Builtins(nil)
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Header)
		assert.NotNil(t, d.Render)
	}
	assert.Equal(t, []string{DirectiveColumns, DirectiveHint, DirectiveTabs, DirectiveDetails}, names)
	assert.Equal(t, names, BuiltinNames())
	assert.True(t, IsBuiltin(DirectiveTabs))
	assert.False(t, IsBuiltin(DirectiveTab))
}

func TestColumnsRenderer(t *testing.T) {
	render := NewColumnsRenderer(IdentityFormatter)

	t.Run("default spacing", func(t *testing.T) {
		result, err := render("a<--->b<--->c", nil, 0)
		require.NoError(t, err)
		assert.Equal(t, `<div class="sc-columns">`+
			`<div class="sc-column">a</div>`+
			`<div class="sc-column">b</div>`+
			`<div class="sc-column">c</div>`+
			`</div>`, result)
	})

	t.Run("custom spacing", func(t *testing.T) {
		result, err := render("a<--->b", []string{"2rem"}, 0)
		require.NoError(t, err)
		assert.Equal(t, `<div class="sc-columns" style="gap: 2rem;">`+
			`<div class="sc-column" style="padding: 0 2rem;">a</div>`+
			`<div class="sc-column" style="padding: 0 2rem;">b</div>`+
			`</div>`, result)
	})

	t.Run("no separator is one column", func(t *testing.T) {
		result, err := render("only", nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(result, `class="sc-column"`))
	})

	t.Run("too many attributes", func(t *testing.T) {
		_, err := render("a", []string{"1rem", "2rem"}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))
	})
}

func TestHintRenderer(t *testing.T) {
	render := NewHintRenderer(IdentityFormatter)

	for _, kind := range HintKinds {
		t.Run(kind, func(t *testing.T) {
			result, err := render("body", []string{kind}, 0)
			require.NoError(t, err)
			assert.Equal(t, `<blockquote class="sc-hint `+kind+`">body</blockquote>`, result)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := render("body", []string{"bogus"}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownHintKind))
		assert.False(t, errors.Is(err, ErrInvalidAttributeCount))
	})

	t.Run("no attributes", func(t *testing.T) {
		_, err := render("body", nil, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))
	})

	t.Run("two attributes", func(t *testing.T) {
		_, err := render("body", []string{HintInfo, HintDanger}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))

		var de *DirectiveError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "2", de.Value)
	})
}

func TestTabsRenderer(t *testing.T) {
	render := NewTabsRenderer(IdentityFormatter)
	body := "\n{{< tab \"MacOS\" >}}mac{{< /tab >}}\nignored\n{{< tab 'Linux & BSD' >}}linux{{< /tab >}}\n"

	t.Run("named group", func(t *testing.T) {
		result, err := render(body, []string{"os"}, 0)
		require.NoError(t, err)
		assert.Equal(t, `<div class="sc-tabs">`+
			`<input type="radio" class="sc-tabs-toggle" name="os" id="os-0" checked="checked" />`+
			`<label for="os-0">MacOS</label>`+
			`<div class="sc-tabs-panel">mac</div>`+
			`<input type="radio" class="sc-tabs-toggle" name="os" id="os-1" />`+
			`<label for="os-1">Linux &amp; BSD</label>`+
			`<div class="sc-tabs-panel">linux</div>`+
			`</div>`, result)
		assert.NotContains(t, result, "ignored")
	})

	t.Run("derived group id is stable", func(t *testing.T) {
		first, err := render(body, nil, 0)
		require.NoError(t, err)
		second, err := render(body, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Contains(t, first, `name="`+TabsIDPrefix)

		other, err := render(body+" ", nil, 0)
		require.NoError(t, err)
		assert.NotEqual(t, first, other)
	})

	t.Run("derived group id differs per occurrence", func(t *testing.T) {
		first, err := render(body, nil, 0)
		require.NoError(t, err)
		second, err := render(body, nil, 1)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.Equal(t, strings.ReplaceAll(first, tabsID(body, 0), tabsID(body, 1)), second)
	})

	t.Run("no tabs", func(t *testing.T) {
		result, err := render("nothing here", nil, 0)
		require.NoError(t, err)
		assert.Equal(t, `<div class="sc-tabs"></div>`, result)
	})

	t.Run("tab without label", func(t *testing.T) {
		_, err := render("{{< tab >}}x{{< /tab >}}", nil, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))

		var de *DirectiveError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, DirectiveTab, de.Directive)
	})

	t.Run("unclosed tab", func(t *testing.T) {
		_, err := render("{{< tab \"A\" >}}x", nil, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoClosingDirective))

		var de *DirectiveError
		require.True(t, errors.As(err, &de))
		assert.Zero(t, de.Position.Line)
	})

	t.Run("unterminated tab label", func(t *testing.T) {
		_, err := render("{{< tab \"A >}}x{{< /tab >}}", nil, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnterminatedString))
	})

	t.Run("too many attributes", func(t *testing.T) {
		_, err := render(body, []string{"a", "b"}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))
	})
}

func TestParseTabs(t *testing.T) {
	tabs, err := ParseTabs(`{{< tab "One" >}}1{{< /tab >}}{{<tab Two>}}2{{</tab>}}`)
	require.NoError(t, err)
	assert.Equal(t, []Tab{{Label: "One", Body: "1"}, {Label: "Two", Body: "2"}}, tabs)
}

func TestDetailsRenderer(t *testing.T) {
	render := NewDetailsRenderer(IdentityFormatter)

	tests := []struct {
		name     string
		attrs    []string
		expected string
	}{
		{
			name:     "default title",
			attrs:    nil,
			expected: `<details class="sc-details"><summary>Details</summary>body</details>`,
		},
		{
			name:     "title",
			attrs:    []string{"More info"},
			expected: `<details class="sc-details"><summary>More info</summary>body</details>`,
		},
		{
			name:     "title and open",
			attrs:    []string{"More", "open"},
			expected: `<details class="sc-details" open><summary>More</summary>body</details>`,
		},
		{
			name:     "escaped title",
			attrs:    []string{"<A & B>"},
			expected: `<details class="sc-details"><summary>&lt;A &amp; B&gt;</summary>body</details>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := render("body", tt.attrs, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		_, err := render("body", []string{"Title", "closed"}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownAttributeValue))
	})

	t.Run("too many attributes", func(t *testing.T) {
		_, err := render("body", []string{"a", "open", "c"}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttributeCount))
	})
}

func TestRenderers_FormatterFailure(t *testing.T) {
	cause := errors.New("format failed")
	failing := func(string) (string, error) { return "", cause }

	renders := map[string]func() error{
		DirectiveColumns: func() error { _, err := NewColumnsRenderer(failing)("a", nil, 0); return err },
		DirectiveHint:    func() error { _, err := NewHintRenderer(failing)("a", []string{HintOK}, 0); return err },
		DirectiveTabs: func() error {
			_, err := NewTabsRenderer(failing)(`{{< tab "A" >}}a{{< /tab >}}`, nil, 0)
			return err
		},
		DirectiveDetails: func() error { _, err := NewDetailsRenderer(failing)("a", nil, 0); return err },
	}

	for name, fn := range renders {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRenderFailed))
			assert.True(t, errors.Is(err, cause))
		})
	}
}
