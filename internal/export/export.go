// Package export renders Markdown into standalone HTML documents and themed
// "cards" sized for a device, and hands them to external renderers for PDF
// and PNG output.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/treykane/md-cards/internal/logging"
)

var log = logging.New("export")

const (
	defaultTitle      = "Markdown Export"
	defaultBrand      = "md-cards"
	defaultFontFamily = `"PingFang SC", "Hiragino Sans GB", "Noto Sans CJK SC", sans-serif`
	defaultFontSize   = "14px"
	defaultFontWeight = "400"
)

// Format selects the export output.
type Format string

const (
	FormatHTML Format = "html"
	FormatCard Format = "card"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

// Formats lists the export formats in menu order.
var Formats = []Format{FormatHTML, FormatCard, FormatPDF, FormatPNG}

// ParseFormat converts a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatHTML, FormatCard, FormatPDF, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want html, card, pdf, or png)", value)
	}
}

// Label is the human-readable menu name.
func (f Format) Label() string {
	switch f {
	case FormatHTML:
		return "HTML document"
	case FormatCard:
		return "HTML card"
	case FormatPDF:
		return "PDF document"
	case FormatPNG:
		return "PNG card"
	default:
		return string(f)
	}
}

// Style carries the font settings shared by documents and cards. Empty
// fields use the defaults.
type Style struct {
	FontFamily string
	FontSize   string
	FontWeight string
}

func (s Style) withDefaults() Style {
	if strings.TrimSpace(s.FontFamily) == "" {
		s.FontFamily = defaultFontFamily
	}
	if strings.TrimSpace(s.FontSize) == "" {
		s.FontSize = defaultFontSize
	}
	if strings.TrimSpace(s.FontWeight) == "" {
		s.FontWeight = defaultFontWeight
	}
	return s
}

// Options configures an export.
type Options struct {
	Theme  Theme
	Device Device
	Author string
	// Brand is the footer label; empty uses "md-cards".
	Brand string
	Style Style
}

// Exporter writes exports into a directory.
type Exporter struct {
	converter *Converter
	dir       string
	now       func() time.Time

	// PDF and PNG turn written HTML into the binary formats.
	PDF Rasterizer
	PNG Rasterizer
}

// NewExporter returns an Exporter that writes into dir using the default
// external renderers.
func NewExporter(converter *Converter, dir string) *Exporter {
	return &Exporter{
		converter: converter,
		dir:       dir,
		now:       time.Now,
		PDF:       NewPDFRasterizer(),
		PNG:       NewPNGRasterizer(),
	}
}

// Dir returns the export directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// HTMLDocument renders md as a standalone HTML page.
func (e *Exporter) HTMLDocument(ctx context.Context, md string, style Style) ([]byte, error) {
	meta, body := ParseFrontMatter(md)
	content, err := e.converter.ToHTML(ctx, body)
	if err != nil {
		return nil, err
	}
	highlight, err := HighlightCSS()
	if err != nil {
		return nil, err
	}

	style = style.withDefaults()
	data := documentData{
		Title:        firstNonEmpty(meta.Title, defaultTitle),
		FontFamily:   cssValue(style.FontFamily),
		FontSize:     cssValue(style.FontSize),
		FontWeight:   cssValue(style.FontWeight),
		HighlightCSS: trustedCSS(highlight),
		Content:      safeHTML(content),
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// Card renders md as a themed card sized for opts.Device. Front matter
// theme, device, and author values override opts.
func (e *Exporter) Card(ctx context.Context, md string, opts Options) ([]byte, error) {
	meta, body := ParseFrontMatter(md)
	opts = opts.applyFrontMatter(meta)

	content, err := e.converter.ToHTML(ctx, body)
	if err != nil {
		return nil, err
	}
	highlight, err := HighlightCSS()
	if err != nil {
		return nil, err
	}

	theme := opts.Theme.Resolve()
	if theme.Adjusted {
		log.Info("adjusted card background for contrast",
			"theme", theme.Name,
			"from", theme.Background,
			"to", theme.BackgroundColor.Hex(),
			"ratio", fmt.Sprintf("%.2f", theme.Ratio),
		)
	}

	style := opts.Style.withDefaults()
	data := cardData{
		Title:        firstNonEmpty(meta.Title, defaultTitle),
		Author:       opts.Author,
		Brand:        firstNonEmpty(opts.Brand, defaultBrand),
		Width:        opts.Device.Width,
		Padding:      cssValue(opts.Device.Padding),
		FooterMargin: cssValue(opts.Device.FooterMargin),
		Background:   cssValue(theme.BackgroundColor.Hex()),
		Text:         cssValue(theme.TextColor.Hex()),
		Muted:        cssValue(theme.MutedText()),
		FontFamily:   cssValue(style.FontFamily),
		FontSize:     cssValue(style.FontSize),
		FontWeight:   cssValue(style.FontWeight),
		HighlightCSS: trustedCSS(highlight),
		Content:      safeHTML(content),
	}
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render card: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML renders and writes an HTML document, returning its path.
func (e *Exporter) WriteHTML(ctx context.Context, md string, style Style) (string, error) {
	data, err := e.HTMLDocument(ctx, md, style)
	if err != nil {
		return "", err
	}
	return e.write(fmt.Sprintf("markdown-export-%d.html", e.now().UnixMilli()), data)
}

// WriteCard renders and writes a card, returning its path.
func (e *Exporter) WriteCard(ctx context.Context, md string, opts Options) (string, error) {
	opts = opts.applyFrontMatter(frontMatterOnly(md))
	data, err := e.Card(ctx, md, opts)
	if err != nil {
		return "", err
	}
	return e.write(fmt.Sprintf("markdown-%s-%d.html", opts.Device.Name, e.now().UnixMilli()), data)
}

// Export writes md in the requested format and returns the final file path.
// PDF and PNG go through an intermediate HTML file that is removed
// afterwards.
func (e *Exporter) Export(ctx context.Context, md string, format Format, opts Options) (string, error) {
	switch format {
	case FormatHTML:
		return e.WriteHTML(ctx, md, opts.Style)
	case FormatCard:
		return e.WriteCard(ctx, md, opts)
	case FormatPDF:
		htmlPath, err := e.WriteHTML(ctx, md, opts.Style)
		if err != nil {
			return "", err
		}
		return e.rasterize(ctx, e.PDF, htmlPath, ".pdf", 0)
	case FormatPNG:
		opts = opts.applyFrontMatter(frontMatterOnly(md))
		htmlPath, err := e.WriteCard(ctx, md, opts)
		if err != nil {
			return "", err
		}
		return e.rasterize(ctx, e.PNG, htmlPath, ".png", opts.Device.Width)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func (e *Exporter) rasterize(ctx context.Context, r Rasterizer, htmlPath, ext string, width int) (string, error) {
	defer func() {
		if err := os.Remove(htmlPath); err != nil && !os.IsNotExist(err) {
			log.Warn("remove intermediate html", "path", htmlPath, "error", err)
		}
	}()
	if r == nil {
		return "", ErrRendererUnavailable
	}
	out := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ext
	if err := r.Rasterize(ctx, htmlPath, out, width); err != nil {
		return "", err
	}
	log.Info("exported", "path", out)
	return out, nil
}

func (e *Exporter) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	log.Info("exported", "path", path)
	return path, nil
}

func (o Options) applyFrontMatter(meta FrontMatter) Options {
	if meta.Theme != "" {
		if theme, ok := LookupTheme(meta.Theme); ok {
			o.Theme = theme
		} else {
			log.Warn("unknown front matter theme", "theme", meta.Theme)
		}
	}
	if meta.Device != "" {
		if device, ok := LookupDevice(meta.Device); ok {
			o.Device = device
		} else {
			log.Warn("unknown front matter device", "device", meta.Device)
		}
	}
	if meta.Author != "" {
		o.Author = meta.Author
	}
	if o.Theme.Name == "" {
		o.Theme = Themes[0]
	}
	if o.Device.Name == "" {
		o.Device = Devices[0]
	}
	return o
}

func frontMatterOnly(md string) FrontMatter {
	meta, _ := ParseFrontMatter(md)
	return meta
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
