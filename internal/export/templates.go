package export

import (
	"html/template"
	"strings"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body {
  max-width: 860px;
  margin: 0 auto;
  padding: 40px 24px;
  color: #333333;
  font-family: {{.FontFamily}};
  font-size: {{.FontSize}};
  font-weight: {{.FontWeight}};
  line-height: 1.7;
}
pre { padding: 16px; border-radius: 8px; overflow-x: auto; background: #f6f8fa; }
code { font-family: "Courier New", monospace; font-size: 0.9em; }
blockquote { border-left: 4px solid #dddddd; margin-left: 0; padding-left: 16px; color: #666666; }
table { border-collapse: collapse; }
th, td { border: 1px solid #dddddd; padding: 6px 12px; }
img { max-width: 100%; }
{{.HighlightCSS}}
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
html, body { margin: 0; padding: 0; background: {{.Background}}; }
.card {
  width: {{.Width}}px;
  box-sizing: border-box;
  border-radius: 16px;
  box-shadow: 0 10px 30px rgba(0, 0, 0, 0.15);
  background: {{.Background}};
  color: {{.Text}};
  font-family: {{.FontFamily}};
  font-size: {{.FontSize}};
  font-weight: {{.FontWeight}};
  line-height: 1.8;
  letter-spacing: 0.3px;
  word-spacing: 0.5px;
  overflow-wrap: break-word;
  text-rendering: optimizeLegibility;
  -webkit-font-smoothing: antialiased;
}
.card-content { padding: {{.Padding}}; }
.card-content * { color: {{.Text}}; }
.card-content h1, .card-content h2, .card-content h3,
.card-content h4, .card-content h5, .card-content h6 { margin: 24px 0 16px; font-weight: 600; line-height: 1.3; }
.card-content p { margin-bottom: 18px; text-align: justify; }
.card-content ul, .card-content ol { margin-bottom: 18px; padding-left: 24px; }
.card-content li { margin-bottom: 8px; line-height: 1.7; }
.card-content code { background: rgba(128, 128, 128, 0.1); padding: 2px 6px; border-radius: 4px; font-family: "Courier New", monospace; font-size: 0.9em; }
.card-content pre { background: rgba(0, 0, 0, 0.05); padding: 16px; border-radius: 8px; white-space: pre-wrap; margin-bottom: 18px; }
.card-content pre code { background: transparent; padding: 0; }
.card-content blockquote { border-left: 4px solid {{.Text}}; padding-left: 16px; margin-left: 0; opacity: 0.8; }
.card-content a { color: #1a73e8; }
.card-content img { display: block; max-width: 100%; height: auto; margin: 0 auto 16px; border-radius: 4px; }
.card-footer { margin-top: {{.FooterMargin}}; padding: 20px 0; text-align: center; color: {{.Muted}}; font-size: 14px; opacity: 0.8; }
.card-footer .brand { font-style: italic; font-size: 10px; }
{{.HighlightCSS}}
</style>
</head>
<body>
<div class="card">
<div class="card-content">
{{.Content}}
</div>
<div class="card-footer">{{if .Author}}<span class="author">{{.Author}}</span> · {{end}}<span class="brand">{{.Brand}}</span></div>
</div>
</body>
</html>
`))

type documentData struct {
	Title        string
	FontFamily   template.CSS
	FontSize     template.CSS
	FontWeight   template.CSS
	HighlightCSS template.CSS
	Content      template.HTML
}

type cardData struct {
	Title        string
	Author       string
	Brand        string
	Width        int
	Padding      template.CSS
	FooterMargin template.CSS
	Background   template.CSS
	Text         template.CSS
	Muted        template.CSS
	FontFamily   template.CSS
	FontSize     template.CSS
	FontWeight   template.CSS
	HighlightCSS template.CSS
	Content      template.HTML
}

// cssValue strips characters that could end a declaration or the style
// element. Values reaching the templates are already validated; this only
// guards free-form font family names.
func cssValue(value string) template.CSS {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, value)
	return template.CSS(strings.TrimSpace(cleaned))
}

// safeHTML marks converter output as trusted. The converter has already run
// it through the sanitizer policy.
func safeHTML(fragment string) template.HTML {
	return template.HTML(fragment)
}

// trustedCSS marks a stylesheet generated by the highlighter as safe.
func trustedCSS(stylesheet string) template.CSS {
	return template.CSS(stylesheet)
}
