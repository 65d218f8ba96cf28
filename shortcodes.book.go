package shortcodes

import (
	"context"
	"encoding/json"
	"io"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PreprocessorContext is the first element of mdBook's preprocessor input.
type PreprocessorContext struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MDBookVersion string          `json:"mdbook_version"`
}

// PreprocessorConfig extracts the [preprocessor.shortcodes] table from the
// book configuration. A book without the table yields the defaults.
func (c *PreprocessorContext) PreprocessorConfig() (*Config, error) {
	if c == nil || len(c.Config) == 0 {
		return DefaultConfig(), nil
	}
	var bookConfig struct {
		Preprocessor map[string]json.RawMessage `json:"preprocessor"`
	}
	if err := json.Unmarshal(c.Config, &bookConfig); err != nil {
		return nil, NewConfigReadError(ErrMsgContextDecodeFailed, "", err)
	}
	return ParseConfig(bookConfig.Preprocessor[PreprocessorName])
}

// Book is the mdBook book model: an ordered list of top-level items.
type Book struct {
	Sections      []BookItem      `json:"sections"`
	NonExhaustive json.RawMessage `json:"__non_exhaustive"`
}

// BookItem is one of a chapter, a separator or a part title.
type BookItem struct {
	Chapter   *Chapter
	Separator bool
	PartTitle *string
}

// Chapter is a single document of the book. Only Content is modified by the
// preprocessor; every other field round-trips as received.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

// MarshalJSON encodes the item the way mdBook's serde enum encoding expects.
func (i BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case i.Chapter != nil:
		return json.Marshal(map[string]*Chapter{BookItemChapter: i.Chapter})
	case i.PartTitle != nil:
		return json.Marshal(map[string]string{BookItemPartTitle: *i.PartTitle})
	case i.Separator:
		return json.Marshal(BookItemSeparator)
	default:
		return nil, NewBookError(ErrMsgUnknownBookItem, nil)
	}
}

// UnmarshalJSON decodes a chapter, separator or part title.
func (i *BookItem) UnmarshalJSON(data []byte) error {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		if unit != BookItemSeparator {
			return NewBookError(ErrMsgUnknownBookItem, nil)
		}
		*i = BookItem{Separator: true}
		return nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(data, &variant); err != nil {
		return err
	}
	if raw, ok := variant[BookItemChapter]; ok {
		var chapter Chapter
		if err := json.Unmarshal(raw, &chapter); err != nil {
			return err
		}
		*i = BookItem{Chapter: &chapter}
		return nil
	}
	if raw, ok := variant[BookItemPartTitle]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return err
		}
		*i = BookItem{PartTitle: &title}
		return nil
	}
	return NewBookError(ErrMsgUnknownBookItem, nil)
}

// Chapters returns every chapter of the book, depth first in reading order.
func (b *Book) Chapters() []*Chapter {
	var chapters []*Chapter
	var walk func(items []BookItem)
	walk = func(items []BookItem) {
		for _, item := range items {
			if item.Chapter == nil {
				continue
			}
			chapters = append(chapters, item.Chapter)
			walk(item.Chapter.SubItems)
		}
	}
	walk(b.Sections)
	return chapters
}

// ReadPreprocessorInput decodes the [context, book] pair mdBook writes to the
// preprocessor's stdin.
func ReadPreprocessorInput(r io.Reader) (*PreprocessorContext, *Book, error) {
	var input []json.RawMessage
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, nil, NewBookError(ErrMsgInvalidInput, err)
	}
	if len(input) != 2 {
		return nil, nil, NewBookError(ErrMsgInvalidInput, nil)
	}

	var ctx PreprocessorContext
	if err := json.Unmarshal(input[0], &ctx); err != nil {
		return nil, nil, NewBookError(ErrMsgContextDecodeFailed, err)
	}
	var book Book
	if err := json.Unmarshal(input[1], &book); err != nil {
		return nil, nil, NewBookError(ErrMsgBookDecodeFailed, err)
	}
	return &ctx, &book, nil
}

// WriteBook encodes the book for mdBook.
func WriteBook(w io.Writer, book *Book) error {
	if err := json.NewEncoder(w).Encode(book); err != nil {
		return NewBookError(ErrMsgBookEncodeFailed, err)
	}
	return nil
}

// ProcessBook transforms every chapter of the book. Chapters are independent
// and are processed concurrently, bounded by the configured concurrency. The
// book is only modified once every chapter succeeded; the first failure is
// returned with the chapter's name and path attached.
func (e *Engine) ProcessBook(ctx context.Context, book *Book) error {
	chapters := book.Chapters()
	results := make([]string, len(chapters))

	limit := e.config.concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	e.logger.Debug(LogMsgBookStart,
		zap.Int(LogFieldChapters, len(chapters)),
		zap.Int(LogFieldConcurrency, limit),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, chapter := range chapters {
		i, chapter := i, chapter
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := e.Process(chapter.Content)
			if err != nil {
				path := chapterPath(chapter)
				e.logger.Warn(LogMsgChapterFailed,
					zap.String(LogFieldChapter, chapter.Name),
					zap.String(LogFieldPath, path),
					zap.Error(err),
				)
				return NewChapterError(chapter.Name, path, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, chapter := range chapters {
		chapter.Content = results[i]
	}
	e.logger.Debug(LogMsgBookEnd, zap.Int(LogFieldChapters, len(chapters)))
	return nil
}

func chapterPath(c *Chapter) string {
	if c.Path == nil {
		return ""
	}
	return *c.Path
}
