// Package toc builds a Markdown table of contents: it reconstructs heading
// boundaries from a flat parse-event stream and renders them back as a nested
// list of links with GitHub-compatible anchors.
//
//	t := toc.New([]byte("# Heading\n\n## Subheading\n"))
//	fmt.Print(t.Render())
//	// - [Heading](#heading)
//	//   - [Subheading](#subheading)
package toc

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"mdtoc/pkg/event"
	"mdtoc/pkg/parse"
)

// TableOfContents holds the headings of one document in source order. It is
// immutable after construction; rendering never modifies it.
type TableOfContents struct {
	headings []Heading
}

// New parses source as Markdown and collects its headings.
func New(source []byte) *TableOfContents {
	return FromEvents(slices.Values(parse.Events(source)))
}

// FromEvents collects headings from an already-parsed event sequence. The
// sequence may come from pkg/parse or from any other producer of the event
// shape; events are copied, so the source may be reused afterwards.
//
// The source grammar guarantees headings do not nest and start/end levels
// match. FromEvents panics on a violation (a heading-end with no open heading
// or with a level differing from its start), since that indicates a broken
// upstream parser rather than a recoverable input condition.
func FromEvents(events iter.Seq[event.Event]) *TableOfContents {
	var headings []Heading
	var current *Heading

	for ev := range events {
		switch ev.Kind {
		case event.KindHeadingStart:
			current = &Heading{level: ev.Level}
		case event.KindHeadingEnd:
			if current == nil {
				panic("toc: heading end without a matching start")
			}
			if current.level != ev.Level {
				panic(fmt.Sprintf("toc: heading level mismatch: started at %d, ended at %d", current.level, ev.Level))
			}
			headings = append(headings, *current)
			current = nil
		default:
			if current != nil {
				current.events = append(current.events, ev)
			}
			// content outside headings is irrelevant here
		}
	}
	return &TableOfContents{headings: headings}
}

// Headings returns the collected headings in document order. The returned
// slice is owned by the TableOfContents and must not be modified.
func (t *TableOfContents) Headings() []Heading {
	return t.headings
}

// Render renders the table of contents as Markdown with DefaultOptions.
func (t *TableOfContents) Render() string {
	return t.RenderWithOptions(DefaultOptions())
}

// RenderWithOptions renders the table of contents as Markdown: one list item
// per heading within the configured level range, indented by how far the
// heading sits below the shallowest included level. Anchors are deduplicated
// across the whole call, and only included headings consume an anchor.
func (t *TableOfContents) RenderWithOptions(opts Options) string {
	opts = opts.normalized()

	var buf strings.Builder
	for i := range t.headings {
		h := &t.headings[i]
		if h.level < opts.MinLevel || h.level > opts.MaxLevel {
			continue
		}
		anchor := opts.Slugifier.Slugify(h.Text())
		indent := opts.Indent * (h.level - opts.MinLevel)
		fmt.Fprintf(&buf, "%s%c [%s](#%s)\n", strings.Repeat(" ", indent), opts.ItemSymbol, h.Label(), anchor)
	}
	return buf.String()
}
