package export

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the optional YAML header of a card document. Non-empty
// fields override the export options.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Theme  string `yaml:"theme"`
	Device string `yaml:"device"`
}

// ParseFrontMatter splits a leading "---" YAML block from content. Without a
// closed block the content is returned unchanged. A block that is not valid
// YAML is dropped from the body and yields empty metadata.
func ParseFrontMatter(content string) (FrontMatter, string) {
	const delim = "---"
	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, delim+"\n") && !strings.HasPrefix(trimmed, delim+"\r\n") {
		return FrontMatter{}, content
	}

	lines := strings.Split(trimmed, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			end = i
			break
		}
	}
	if end <= 0 {
		return FrontMatter{}, content
	}

	body := strings.Join(lines[end+1:], "\n")
	var meta FrontMatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &meta); err != nil {
		log.Warn("ignore invalid front matter", "error", err)
		return FrontMatter{}, body
	}
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Author = strings.TrimSpace(meta.Author)
	meta.Theme = strings.ToLower(strings.TrimSpace(meta.Theme))
	meta.Device = strings.ToLower(strings.TrimSpace(meta.Device))
	return meta, body
}
