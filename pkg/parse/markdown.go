// Package parse flattens a Markdown document into the event stream defined
// by pkg/event, using goldmark as the underlying parser.
package parse

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"mdtoc/pkg/event"
)

// markdown is the shared goldmark instance. Strikethrough and footnotes are
// enabled to match the anchor convention of the documentation platforms this
// feeds; heading attributes and typographic substitution stay disabled since
// either would change heading text and break anchor compatibility.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Footnote,
	),
)

// Events parses source as Markdown and returns the document as a flat event
// sequence in source order. Constructs the ToC builder does not interpret
// are emitted as opaque events; their inner text still surfaces as text
// events, so link and image labels contribute to heading text.
func Events(source []byte) []event.Event {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var events []event.Event
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Document:
			// no event for the root

		case *ast.Heading:
			if entering {
				events = append(events, event.HeadingStart(node.Level))
			} else {
				events = append(events, event.HeadingEnd(node.Level))
			}

		case *ast.Text:
			if entering {
				events = append(events, event.Text(string(node.Segment.Value(source))))
				if node.SoftLineBreak() || node.HardLineBreak() {
					events = append(events, event.Other())
				}
			}

		case *ast.String:
			if entering {
				events = append(events, event.Text(string(node.Value)))
			}

		case *ast.CodeSpan:
			if entering {
				events = append(events, event.Code(codeSpanText(node, source)))
				return ast.WalkSkipChildren, nil
			}

		case *ast.Emphasis:
			switch {
			case node.Level >= 2 && entering:
				events = append(events, event.StrongStart())
			case node.Level >= 2:
				events = append(events, event.StrongEnd())
			case entering:
				events = append(events, event.EmphasisStart())
			default:
				events = append(events, event.EmphasisEnd())
			}

		case *ast.RawHTML:
			if entering {
				events = append(events, event.HTML(segmentsText(node.Segments, source)))
				return ast.WalkSkipChildren, nil
			}

		case *ast.HTMLBlock:
			if entering {
				events = append(events, event.HTML(htmlBlockText(node, source)))
				return ast.WalkSkipChildren, nil
			}

		case *extast.Strikethrough:
			// rendered label drops the markers but keeps the inner text
			if entering {
				events = append(events, event.Other())
			}

		default:
			if entering {
				events = append(events, event.Other())
			}
		}
		return ast.WalkContinue, nil
	})

	return events
}

// codeSpanText concatenates the text segments of an inline code span.
func codeSpanText(node *ast.CodeSpan, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}

// segmentsText concatenates the raw source segments of an inline HTML node.
func segmentsText(segments *text.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// htmlBlockText concatenates the lines of an HTML block, closure line included.
func htmlBlockText(node *ast.HTMLBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < node.Lines().Len(); i++ {
		line := node.Lines().At(i)
		buf.Write(line.Value(source))
	}
	if node.HasClosure() {
		buf.Write(node.ClosureLine.Value(source))
	}
	return buf.String()
}
