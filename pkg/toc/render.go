package toc

import (
	"strings"

	"mdtoc/pkg/event"
)

// RenderInline re-serializes a limited set of inline Markdown events back to
// Markdown text. Only the constructs that can usefully appear in a ToC link
// label are handled: emphasis, strong, plain text, code spans and raw HTML
// (passed through unescaped). Everything else is skipped, so link and image
// markers vanish while their inner text survives via the contained text
// events.
func RenderInline(events []event.Event) string {
	var buf strings.Builder
	for _, ev := range events {
		switch ev.Kind {
		case event.KindEmphasisStart, event.KindEmphasisEnd:
			buf.WriteByte('*')
		case event.KindStrongStart, event.KindStrongEnd:
			buf.WriteString("**")
		case event.KindText:
			buf.WriteString(ev.Payload)
		case event.KindCode:
			buf.WriteByte('`')
			buf.WriteString(ev.Payload)
			buf.WriteByte('`')
		case event.KindHTML:
			buf.WriteString(ev.Payload)
		default:
			// not rendered
		}
	}
	return buf.String()
}
