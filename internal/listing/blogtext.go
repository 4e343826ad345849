package listing

import (
	"regexp"
	"strings"
)

// breakRE matches a <br> tag in any of its spellings, optionally followed by
// one newline, case-insensitively. The trailing newline is consumed so that
// "<br />\n" does not reload as two line breaks.
var breakRE = regexp.MustCompile(`(?i)<br\s*/?>(\r\n|\n|\r)?`)

// NewlinesToBreaks converts newline characters in edited blog content to
// <br /> markup for storage. Form posts carry CRLF line endings, so those are
// normalized first; stored content never contains a carriage return.
//
// The round trip through BreaksToNewlines is intentionally lossy: a literal
// <br /> already present in the source text is indistinguishable from a real
// line break on reload. Stored posts already rely on this, so it must not
// change.
func NewlinesToBreaks(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.ReplaceAll(content, "\n", "<br />")
}

// BreaksToNewlines converts stored <br /> markup back to plain newlines for
// the edit form.
func BreaksToNewlines(content string) string {
	return breakRE.ReplaceAllString(content, "\n")
}

// SplitTags splits a comma-separated tags input, trimming whitespace and
// dropping empty entries.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// SplitLines splits a textarea value into trimmed, non-empty lines. Used for
// the pricing plan feature bullets.
func SplitLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// JoinTags renders a tags slice back into the comma-separated form input.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
