package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitHub_BasicSlugs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Heading", "heading"},
		{"spaces become hyphens", "Subheading with code", "subheading-with-code"},
		{"punctuation stripped", "What's new?", "whats-new"},
		{"existing hyphens kept", "re-use", "re-use"},
		{"underscores kept", "snake_case", "snake_case"},
		{"digits kept", "Version 2", "version-2"},
		{"non-ascii lowercased", "Привет", "привет"},
		{"combining marks kept", "Cafe\u0301", "cafe\u0301"},
		{"hebrew points kept", "שָׁלוֹם", "שָׁלוֹם"},
		{"cjk preserved", "標題", "標題"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGitHub().Slugify(tt.text))
		})
	}
}

func TestGitHub_IndependentStatesAgree(t *testing.T) {
	a := NewGitHub()
	b := NewGitHub()

	assert.Equal(t, a.Slugify("Fresh Heading"), b.Slugify("Fresh Heading"))
}

func TestGitHub_DuplicateDisambiguation(t *testing.T) {
	s := NewGitHub()

	assert.Equal(t, "heading", s.Slugify("Heading"))
	assert.Equal(t, "heading-1", s.Slugify("Heading"))
	assert.Equal(t, "heading-2", s.Slugify("Heading"))
}

func TestGitHub_DuplicatesFromDifferentSpellings(t *testing.T) {
	// "Heading" and "heading" collapse to the same candidate anchor
	s := NewGitHub()

	assert.Equal(t, "heading", s.Slugify("Heading"))
	assert.Equal(t, "heading-1", s.Slugify("heading"))
}

func TestGitHub_ZeroValueUsable(t *testing.T) {
	var s GitHub

	assert.Equal(t, "heading", s.Slugify("Heading"))
	assert.Equal(t, "heading-1", s.Slugify("Heading"))
}
