package options

import "strings"

// Wrap80 wraps text at 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap reflows each blank-line separated paragraph of text to width columns.
// Words longer than width are kept whole.
func Wrap(text string, width int) string {
	paragraphs := strings.Split(strings.TrimSpace(text), "\n\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, wrapParagraph(p, width))
	}
	return strings.Join(out, "\n\n")
}

func wrapParagraph(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	count := width - len(words[0])
	for _, word := range words[1:] {
		if len(word)+1 > count {
			b.WriteString("\n")
			b.WriteString(word)
			count = width - len(word)
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		count -= 1 + len(word)
	}
	return b.String()
}
