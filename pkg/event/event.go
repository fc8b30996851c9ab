// Package event defines the flat Markdown event stream consumed by the ToC
// builder. Events mirror the shape of a streaming Markdown parser: paired
// start/end markers for container constructs and payload-carrying events for
// leaf content. The set of kinds is deliberately small; anything a producer
// emits beyond it should use KindOther, which consumers ignore.
package event

import "fmt"

// Kind identifies the type of a parse event.
type Kind int

const (
	// KindOther marks an event the ToC builder does not interpret.
	// Producers map every unsupported construct to it.
	KindOther Kind = iota
	KindHeadingStart
	KindHeadingEnd
	KindText
	KindCode
	KindEmphasisStart
	KindEmphasisEnd
	KindStrongStart
	KindStrongEnd
	KindHTML
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHeadingStart:
		return "HeadingStart"
	case KindHeadingEnd:
		return "HeadingEnd"
	case KindText:
		return "Text"
	case KindCode:
		return "Code"
	case KindEmphasisStart:
		return "EmphasisStart"
	case KindEmphasisEnd:
		return "EmphasisEnd"
	case KindStrongStart:
		return "StrongStart"
	case KindStrongEnd:
		return "StrongEnd"
	case KindHTML:
		return "HTML"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one element of a parsed Markdown stream.
//
// Level is meaningful only for KindHeadingStart and KindHeadingEnd and is
// always in 1..6 for well-formed input. Payload is meaningful only for
// KindText, KindCode and KindHTML.
type Event struct {
	Kind    Kind
	Level   int
	Payload string
}

// HeadingStart builds a heading-open marker for the given level.
func HeadingStart(level int) Event { return Event{Kind: KindHeadingStart, Level: level} }

// HeadingEnd builds a heading-close marker for the given level.
func HeadingEnd(level int) Event { return Event{Kind: KindHeadingEnd, Level: level} }

// Text builds a plain-text event.
func Text(s string) Event { return Event{Kind: KindText, Payload: s} }

// Code builds an inline code span event. The payload is the span content
// without the backtick delimiters.
func Code(s string) Event { return Event{Kind: KindCode, Payload: s} }

// EmphasisStart builds an emphasis-open marker.
func EmphasisStart() Event { return Event{Kind: KindEmphasisStart} }

// EmphasisEnd builds an emphasis-close marker.
func EmphasisEnd() Event { return Event{Kind: KindEmphasisEnd} }

// StrongStart builds a strong-open marker.
func StrongStart() Event { return Event{Kind: KindStrongStart} }

// StrongEnd builds a strong-close marker.
func StrongEnd() Event { return Event{Kind: KindStrongEnd} }

// HTML builds a raw HTML passthrough event.
func HTML(s string) Event { return Event{Kind: KindHTML, Payload: s} }

// Other builds an opaque event the ToC builder will skip over.
func Other() Event { return Event{Kind: KindOther} }
