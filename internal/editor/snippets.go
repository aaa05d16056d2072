package editor

// SnippetKind names a toolbar template.
type SnippetKind string

const (
	SnippetBold          SnippetKind = "bold"
	SnippetItalic        SnippetKind = "italic"
	SnippetHeading1      SnippetKind = "heading1"
	SnippetHeading2      SnippetKind = "heading2"
	SnippetHeading3      SnippetKind = "heading3"
	SnippetInlineCode    SnippetKind = "code"
	SnippetCodeBlock     SnippetKind = "code_block"
	SnippetBulletList    SnippetKind = "list"
	SnippetOrderedList   SnippetKind = "ordered_list"
	SnippetTaskList      SnippetKind = "task_list"
	SnippetLink          SnippetKind = "link"
	SnippetImage         SnippetKind = "image"
	SnippetTable         SnippetKind = "table"
	SnippetBlockquote    SnippetKind = "blockquote"
	SnippetHorizontal    SnippetKind = "horizontal_rule"
	SnippetStrikethrough SnippetKind = "strikethrough"
)

// Snippet is a Markdown template offered by the snippet picker.
type Snippet struct {
	Kind  SnippetKind
	Label string
	Text  string
}

// Snippets lists the templates in picker order.
var Snippets = []Snippet{
	{Kind: SnippetBold, Label: "Bold", Text: "**bold text**"},
	{Kind: SnippetItalic, Label: "Italic", Text: "*italic text*"},
	{Kind: SnippetHeading1, Label: "Heading 1", Text: "# Heading\n"},
	{Kind: SnippetHeading2, Label: "Heading 2", Text: "## Heading\n"},
	{Kind: SnippetHeading3, Label: "Heading 3", Text: "### Heading\n"},
	{Kind: SnippetInlineCode, Label: "Inline code", Text: "`inline code`"},
	{Kind: SnippetCodeBlock, Label: "Code block", Text: "```\ncode block\n```\n"},
	{Kind: SnippetBulletList, Label: "Bullet list", Text: "- List item\n"},
	{Kind: SnippetOrderedList, Label: "Ordered list", Text: "1. List item\n"},
	{Kind: SnippetTaskList, Label: "Task list", Text: "- [ ] Open task\n- [x] Done task\n"},
	{Kind: SnippetLink, Label: "Link", Text: "[link text](http://example.com)"},
	{Kind: SnippetImage, Label: "Image", Text: "![image description](image-url)\n"},
	{Kind: SnippetTable, Label: "Table", Text: "\n| Column 1 | Column 2 | Column 3 |\n| --- | --- | --- |\n| Cell 1 | Cell 2 | Cell 3 |\n"},
	{Kind: SnippetBlockquote, Label: "Blockquote", Text: "> Quote\n"},
	{Kind: SnippetHorizontal, Label: "Horizontal rule", Text: "\n---\n"},
	{Kind: SnippetStrikethrough, Label: "Strikethrough", Text: "~~strikethrough~~"},
}

// LookupSnippet returns the snippet registered for kind.
func LookupSnippet(kind SnippetKind) (Snippet, bool) {
	for _, snippet := range Snippets {
		if snippet.Kind == kind {
			return snippet, true
		}
	}
	return Snippet{}, false
}
