package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates the Markdown could not be converted.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// codeStyle is the chroma style used for highlighted code blocks.
const codeStyle = "github"

// Converter turns Markdown into a sanitized HTML fragment.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewConverter returns a Converter with GFM, footnotes, emoji shortcodes,
// and class-based syntax highlighting.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			emoji.Emoji,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// Raw HTML passes through goldmark and is cleaned by the policy.
			html.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "pre", "div", "a", "sup", "li", "section", "hr")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("type").Matching(bluemonday.Paragraph).OnElements("input")
	policy.AllowAttrs("checked", "disabled").OnElements("input")

	return &Converter{md: md, policy: policy}
}

// ToHTML converts Markdown to a sanitized HTML fragment. goldmark has no
// context support, so conversion runs in a goroutine and ctx only bounds the
// wait.
func (c *Converter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: c.policy.Sanitize(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightCSS returns the stylesheet for the classes emitted by the code
// highlighter.
func HighlightCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(codeStyle)); err != nil {
		return "", fmt.Errorf("write highlight css: %w", err)
	}
	return buf.String(), nil
}
