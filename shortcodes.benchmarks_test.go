package shortcodes

import (
	"context"
	"strconv"
	"strings"
	"testing"
)

// =============================================================================
// DOCUMENT BENCHMARKS
// =============================================================================

func BenchmarkProcess_NoDirectives(b *testing.B) {
	engine := MustNew()
	source := strings.Repeat("Plain paragraph with {{ braces }} and <html>.\n", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Process(source)
	}
}

func BenchmarkProcess_Hint(b *testing.B) {
	engine := MustNew()
	source := "{{< hint info >}}Note{{< /hint >}}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Process(source)
	}
}

func BenchmarkProcess_AllDirectives(b *testing.B) {
	engine := MustNew()
	source := `{{< columns 1rem >}}
{{< hint warning >}}Left{{< /hint >}}
<--->
Right
{{< /columns >}}
{{< tabs >}}
{{< tab "One" >}}1{{< /tab >}}
{{< tab "Two" >}}2{{< /tab >}}
{{< /tabs >}}
{{< details "More" open >}}Hidden{{< /details >}}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Process(source)
	}
}

func BenchmarkProcess_Markdown(b *testing.B) {
	engine := MustNew(WithMarkdown(true))
	source := "{{< details >}}\n# Heading\n\n- *one*\n- **two**\n{{< /details >}}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Process(source)
	}
}

func BenchmarkProcess_10Hints(b *testing.B) {
	benchmarkHints(b, 10)
}

func BenchmarkProcess_100Hints(b *testing.B) {
	benchmarkHints(b, 100)
}

func BenchmarkProcess_1000Hints(b *testing.B) {
	benchmarkHints(b, 1000)
}

func benchmarkHints(b *testing.B, count int) {
	engine := MustNew()
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("{{< hint ok >}}item ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("{{< /hint >}}\n")
	}
	source := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Process(source)
	}
}

// =============================================================================
// BOOK BENCHMARKS
// =============================================================================

func BenchmarkProcessBook_100Chapters(b *testing.B) {
	engine := MustNew()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		book := &Book{}
		for j := 0; j < 100; j++ {
			book.Sections = append(book.Sections, BookItem{Chapter: &Chapter{
				Name:    "Chapter " + strconv.Itoa(j),
				Content: "{{< hint info >}}x{{< /hint >}}{{< details >}}y{{< /details >}}",
			}})
		}
		b.StartTimer()

		_ = engine.ProcessBook(ctx, book)
	}
}

func BenchmarkProcess_Parallel(b *testing.B) {
	engine := MustNew()
	source := "{{< hint danger >}}x{{< /hint >}}"

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = engine.Process(source)
		}
	})
}
