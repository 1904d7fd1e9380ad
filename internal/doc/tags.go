package doc

import (
	"regexp"
	"sort"
)

// tagPattern matches '#' followed by word characters (letters, digits, '_',
// '-'). A bare '#' with nothing after it is not a tag.
var tagPattern = regexp.MustCompile(`#([\w-]+)`)

// ExtractTags returns the sorted, de-duplicated set of tag names in item
// text, without the leading '#'. Extraction is read-only and idempotent: tags
// are never stored, only recomputed from text.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	sort.Strings(out)
	return out
}

// ReplaceTags rewrites every "#tag" occurrence in text through fn. fn
// receives the full match including the '#'. Used for display styling only;
// stored text is never rewritten.
func ReplaceTags(text string, fn func(tag string) string) string {
	return tagPattern.ReplaceAllStringFunc(text, fn)
}

// HasTag reports whether the text contains the given tag.
func HasTag(text, tag string) bool {
	for _, t := range ExtractTags(text) {
		if t == tag {
			return true
		}
	}
	return false
}
