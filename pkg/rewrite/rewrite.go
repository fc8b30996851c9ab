// Package rewrite splices a rendered table of contents into a Markdown
// document between marker comments, so tooling can refresh a ToC in place
// without disturbing the surrounding text.
package rewrite

import (
	"bytes"
	"strings"

	"mdtoc/pkg/utils"
)

// Default marker comments. Each must occupy its own line in the document.
const (
	DefaultBeginMarker = "<!-- toc -->"
	DefaultEndMarker   = "<!-- tocstop -->"
)

// HasMarkers reports whether document contains a line equal to begin. It is a
// cheap probe for skipping files that never opted into ToC management; Update
// performs the full structural validation.
func HasMarkers(document []byte, begin string) bool {
	for _, line := range strings.Split(string(document), "\n") {
		if strings.TrimSpace(line) == begin {
			return true
		}
	}
	return false
}

// Update returns a copy of document with everything between the begin and end
// marker lines replaced by toc. The marker lines themselves are kept, so the
// result can be updated again later. toc is inserted verbatim and is expected
// to end with a newline (toc.Render output does).
//
// Errors: utils.ErrMarkerNotFound when no begin marker exists,
// utils.ErrMarkerOrder on a duplicate begin or an end with no open begin, and
// utils.ErrMarkerUnclosed when the begin marker is never closed.
func Update(document []byte, toc, begin, end string) ([]byte, error) {
	var buf bytes.Buffer

	trailingNewline := bytes.HasSuffix(document, []byte("\n"))
	lines := strings.Split(string(document), "\n")
	// Split leaves a trailing empty string when the document ends with \n
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	found := false
	inBlock := false
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case begin:
			if inBlock {
				return nil, utils.WrapErrorf(utils.ErrMarkerOrder, "second %q before %q", begin, end)
			}
			found = true
			inBlock = true
			buf.WriteString(line)
			buf.WriteString("\n")
		case end:
			if !inBlock {
				return nil, utils.WrapErrorf(utils.ErrMarkerOrder, "%q with no preceding %q", end, begin)
			}
			inBlock = false
			buf.WriteString(toc)
			buf.WriteString(line)
			buf.WriteString("\n")
		default:
			if !inBlock {
				buf.WriteString(line)
				buf.WriteString("\n")
			}
			// lines inside the block are the previous ToC; dropped
		}
	}

	if inBlock {
		return nil, utils.WrapErrorf(utils.ErrMarkerUnclosed, "%q", begin)
	}
	if !found {
		return nil, utils.WrapErrorf(utils.ErrMarkerNotFound, "%q", begin)
	}

	out := buf.Bytes()
	// a document without a final newline must come back without one, so an
	// up-to-date ToC compares byte-equal to the input
	if !trailingNewline {
		out = bytes.TrimSuffix(out, []byte("\n"))
	}
	return out, nil
}
