// Package markdown understands the small markdown subset the assistant is
// told to produce: ### headings, list items, paragraphs and **bold** spans.
package markdown

import (
	"html"
	"regexp"
	"strings"
)

type Kind string

const (
	Heading   Kind = "heading"
	ListItem  Kind = "list_item"
	Paragraph Kind = "paragraph"
)

type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

type Block struct {
	Kind  Kind   `json:"kind"`
	Spans []Span `json:"spans"`
}

var (
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	headingPrefix   = regexp.MustCompile(`^###\s*`)
	orderedPrefix   = regexp.MustCompile(`^\d+\.\s*`)
	unorderedPrefix = regexp.MustCompile(`^[*-]\s*`)
)

// Parse splits content into blocks line by line. Blank lines are dropped.
func Parse(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, parseLine(trimmed))
	}
	return blocks
}

func parseLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "###"):
		return Block{Kind: Heading, Spans: Spans(headingPrefix.ReplaceAllString(line, ""))}
	case isListItem(line):
		text := orderedPrefix.ReplaceAllString(line, "")
		if text == line {
			text = unorderedPrefix.ReplaceAllString(line, "")
		}
		return Block{Kind: ListItem, Spans: Spans(text)}
	default:
		return Block{Kind: Paragraph, Spans: Spans(line)}
	}
}

// A leading "**" opens a bold span, it is not a bullet.
func isListItem(line string) bool {
	if strings.HasPrefix(line, "-") {
		return true
	}
	if strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "**") {
		return true
	}
	return orderedPrefix.MatchString(line)
}

// Spans splits text on **bold** runs. Unpaired markers stay literal.
func Spans(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// HTML renders blocks as escaped HTML fragments. Consecutive list items
// share one <ul>.
func HTML(blocks []Block) string {
	var b strings.Builder
	inList := false
	for _, blk := range blocks {
		if blk.Kind == ListItem && !inList {
			b.WriteString("<ul>")
			inList = true
		}
		if blk.Kind != ListItem && inList {
			b.WriteString("</ul>")
			inList = false
		}

		switch blk.Kind {
		case Heading:
			b.WriteString("<h3>" + renderSpans(blk.Spans) + "</h3>")
		case ListItem:
			b.WriteString("<li>" + renderSpans(blk.Spans) + "</li>")
		default:
			b.WriteString("<p>" + renderSpans(blk.Spans) + "</p>")
		}
	}
	if inList {
		b.WriteString("</ul>")
	}
	return b.String()
}

func renderSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		if s.Bold {
			b.WriteString("<strong>" + text + "</strong>")
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}
