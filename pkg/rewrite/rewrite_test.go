package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdtoc/pkg/utils"
)

const tocBlock = "- [Heading](#heading)\n"

func TestUpdate_InsertsBetweenMarkers(t *testing.T) {
	doc := []byte("# Heading\n\n<!-- toc -->\n<!-- tocstop -->\n\nBody text.\n")

	updated, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	require.NoError(t, err)
	assert.Equal(t,
		"# Heading\n\n<!-- toc -->\n- [Heading](#heading)\n<!-- tocstop -->\n\nBody text.\n",
		string(updated))
}

func TestUpdate_ReplacesPreviousToc(t *testing.T) {
	doc := []byte("<!-- toc -->\n- [Old](#old)\n  - [Stale](#stale)\n<!-- tocstop -->\n")

	updated, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	require.NoError(t, err)
	assert.Equal(t, "<!-- toc -->\n- [Heading](#heading)\n<!-- tocstop -->\n", string(updated))
}

func TestUpdate_Idempotent(t *testing.T) {
	doc := []byte("intro\n<!-- toc -->\nold\n<!-- tocstop -->\noutro\n")

	once, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)
	require.NoError(t, err)
	twice, err := Update(once, tocBlock, DefaultBeginMarker, DefaultEndMarker)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestUpdate_PreservesMissingFinalNewline(t *testing.T) {
	// byte-faithful output keeps an up-to-date document comparing equal,
	// so staleness checks do not flip on newline normalization alone
	doc := []byte("<!-- toc -->\n- [Heading](#heading)\n<!-- tocstop -->\ntail without newline")

	updated, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	require.NoError(t, err)
	assert.Equal(t, string(doc), string(updated))
}

func TestUpdate_CustomMarkers(t *testing.T) {
	doc := []byte("<!-- BEGIN TOC -->\n<!-- END TOC -->\n")

	updated, err := Update(doc, tocBlock, "<!-- BEGIN TOC -->", "<!-- END TOC -->")

	require.NoError(t, err)
	assert.Equal(t, "<!-- BEGIN TOC -->\n- [Heading](#heading)\n<!-- END TOC -->\n", string(updated))
}

func TestUpdate_MarkerMissing(t *testing.T) {
	_, err := Update([]byte("# Heading\n"), tocBlock, DefaultBeginMarker, DefaultEndMarker)

	assert.ErrorIs(t, err, utils.ErrMarkerNotFound)
}

func TestUpdate_EndBeforeBegin(t *testing.T) {
	doc := []byte("<!-- tocstop -->\n<!-- toc -->\n")

	_, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	assert.ErrorIs(t, err, utils.ErrMarkerOrder)
}

func TestUpdate_DuplicateBegin(t *testing.T) {
	doc := []byte("<!-- toc -->\n<!-- toc -->\n<!-- tocstop -->\n")

	_, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	assert.ErrorIs(t, err, utils.ErrMarkerOrder)
}

func TestUpdate_UnclosedBegin(t *testing.T) {
	doc := []byte("<!-- toc -->\nno end in sight\n")

	_, err := Update(doc, tocBlock, DefaultBeginMarker, DefaultEndMarker)

	assert.ErrorIs(t, err, utils.ErrMarkerUnclosed)
}

func TestHasMarkers(t *testing.T) {
	assert.True(t, HasMarkers([]byte("text\n<!-- toc -->\n"), DefaultBeginMarker))
	assert.True(t, HasMarkers([]byte("  <!-- toc -->  \n"), DefaultBeginMarker))
	assert.False(t, HasMarkers([]byte("plain document\n"), DefaultBeginMarker))
	assert.False(t, HasMarkers([]byte("inline <!-- toc --> mention\n"), DefaultBeginMarker))
}
