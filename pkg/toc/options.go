package toc

import "mdtoc/pkg/slug"

// ItemSymbol is the list-marker glyph used for rendered ToC entries.
type ItemSymbol rune

const (
	Hyphen   ItemSymbol = '-'
	Asterisk ItemSymbol = '*'
)

// Options controls how a TableOfContents renders.
//
// The zero value of a field means "use the default" (see DefaultOptions),
// except Indent, where zero is a valid flat layout; a negative Indent falls
// back to the default.
type Options struct {
	// ItemSymbol is the list marker, default '-'.
	ItemSymbol ItemSymbol
	// MinLevel and MaxLevel bound the included heading levels, inclusive.
	// Defaults are 1 and 6. MinLevel is also the indentation floor: headings
	// at MinLevel render flush left regardless of their absolute level.
	MinLevel int
	MaxLevel int
	// Indent is the number of spaces per level below the floor, default 2.
	Indent int
	// Slugifier generates anchors. Default is a fresh GitHub-compatible
	// slugifier per render call, so repeated renders are identical. Pass a
	// long-lived instance to carry duplicate counts across calls.
	Slugifier slug.Slugifier
}

// DefaultOptions returns the option set matching GitHub's rendered ToCs.
func DefaultOptions() Options {
	return Options{
		ItemSymbol: Hyphen,
		MinLevel:   1,
		MaxLevel:   6,
		Indent:     2,
	}
}

// normalized fills unset fields with their defaults.
func (o Options) normalized() Options {
	if o.ItemSymbol == 0 {
		o.ItemSymbol = Hyphen
	}
	if o.MinLevel <= 0 {
		o.MinLevel = 1
	}
	if o.MaxLevel <= 0 {
		o.MaxLevel = 6
	}
	if o.Indent < 0 {
		o.Indent = 2
	}
	if o.Slugifier == nil {
		o.Slugifier = slug.NewGitHub()
	}
	return o
}
