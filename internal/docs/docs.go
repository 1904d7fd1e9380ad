package docs

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// Built-in help topics shipped inside the binary, so `todo docs` works
// offline and stays in sync with the installed version.

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, path := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "content/"), ".md")
		if name != "" {
			topics = append(topics, name)
		}
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
