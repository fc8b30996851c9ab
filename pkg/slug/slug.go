// Package slug derives URL-fragment anchors from heading text.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// Slugifier converts heading plain text into a unique anchor. Implementations
// carry their own duplicate-tracking state, so one instance must be used for
// exactly one rendering pass unless duplicate counts are intentionally shared
// across passes. Instances are not safe for concurrent use.
type Slugifier interface {
	Slugify(text string) string
}

// anchorStrip removes everything that is not a word character, a hyphen or a
// space. Word characters span letters, combining marks, digits and the
// underscore, so decomposed accents and pointed scripts keep their marks. The
// space branch looks redundant because spaces are replaced with hyphens
// before this pattern runs, but the class must stay exactly as-is to remain
// bit-compatible with GitHub's anchor generation.
var anchorStrip = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\- ]`)

// GitHub mimics GitHub's undocumented heading-anchor algorithm: lowercase,
// spaces to hyphens, strip punctuation, then suffix duplicates with -1, -2, …
// while the first occurrence keeps the bare anchor.
//
// GitHub does not publish the algorithm anywhere (it is absent from the GFM
// spec), so this is behavioral mimicry validated against real rendering.
type GitHub struct {
	counts map[string]int
}

// NewGitHub returns a GitHub-compatible slugifier with empty duplicate state.
func NewGitHub() *GitHub {
	return &GitHub{counts: make(map[string]int)}
}

// Slugify returns the anchor for text, unique among all anchors this instance
// has produced so far.
func (g *GitHub) Slugify(text string) string {
	anchor := anchorStrip.ReplaceAllString(strings.ReplaceAll(strings.ToLower(text), " ", "-"), "")

	if g.counts == nil {
		g.counts = make(map[string]int)
	}
	i, seen := g.counts[anchor]
	if !seen {
		g.counts[anchor] = 0
		return anchor
	}
	g.counts[anchor] = i + 1
	return fmt.Sprintf("%s-%d", anchor, i+1)
}
