package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mdtoc/pkg/event"
)

func TestRenderInline_FixedSubset(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   string
	}{
		{
			"plain text",
			[]event.Event{event.Text("Heading")},
			"Heading",
		},
		{
			"emphasis",
			[]event.Event{event.Text("Another "), event.EmphasisStart(), event.Text("heading"), event.EmphasisEnd()},
			"Another *heading*",
		},
		{
			"strong",
			[]event.Event{event.StrongStart(), event.Text("bold"), event.StrongEnd()},
			"**bold**",
		},
		{
			"code span",
			[]event.Event{event.Text("with "), event.Code("code")},
			"with `code`",
		},
		{
			"raw html passthrough",
			[]event.Event{event.HTML("<sup>"), event.Text("1"), event.HTML("</sup>")},
			"<sup>1</sup>",
		},
		{
			"unhandled events skipped",
			[]event.Event{event.Other(), event.Text("kept"), event.Other()},
			"kept",
		},
		{
			"empty",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderInline(tt.events))
		})
	}
}
