package toc

import (
	"strings"

	"mdtoc/pkg/event"
)

// Heading is one detected heading: its level and the inline events that
// appeared between its start and end markers, in source order.
type Heading struct {
	events []event.Event
	level  int
}

// Level returns the heading level (1 = top-level).
func (h *Heading) Level() int {
	return h.level
}

// Events returns the inline events between the heading markers. The returned
// slice is owned by the heading and must not be modified.
func (h *Heading) Events() []event.Event {
	return h.events
}

// Text returns the heading text with all Markdown markup stripped: the text
// and code payloads concatenated in order. Emphasis markers and raw HTML do
// not contribute. This is the input for anchor generation.
func (h *Heading) Text() string {
	var buf strings.Builder
	for _, ev := range h.events {
		if ev.Kind == event.KindText || ev.Kind == event.KindCode {
			buf.WriteString(ev.Payload)
		}
	}
	return buf.String()
}

// Label returns the heading rendered back to Markdown for use as link text.
func (h *Heading) Label() string {
	return RenderInline(h.events)
}
