package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestSentenceSegmenter_AnchorWithTrailingSentence(t *testing.T) {
	// Arrange
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `<p>Click <a href="x">here</a> to unsubscribe.</p>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	require.NotEmpty(t, pairs)
	found := false
	for _, pair := range pairs {
		if pair.Href == "x" && strings.Contains(pair.InnerText, "unsubscribe.") {
			found = true
		}
	}
	assert.True(t, found, "expected a pair for href x carrying the sentence text")
}

func TestSentenceSegmenter_UnterminatedSentenceFlushedAtEnd(t *testing.T) {
	// Arrange
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `<p><a href="u">Click here</a> to stop these emails</p>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	require.Len(t, pairs, 1)
	assert.Equal(t, "u", pairs[0].Href)
	assert.Contains(t, pairs[0].InnerText, "to stop these emails")
}

func TestSentenceSegmenter_TwoAnchorsTwoSentences(t *testing.T) {
	// Arrange
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `<p><a href="a">First</a> sentence one. <a href="b">Second</a> sentence two.</p>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", pairs[0].Href)
	assert.Contains(t, pairs[0].InnerText, "sentence one.")
	assert.Equal(t, "b", pairs[1].Href)
	assert.Contains(t, pairs[1].InnerText, "sentence two.")
}

func TestSentenceSegmenter_ParentsInFirstAppearanceOrder(t *testing.T) {
	// Arrange
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `
		<div><a href="one">Stop mail one.</a></div>
		<div><a href="two">Stop mail two.</a></div>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	require.Len(t, pairs, 2)
	assert.Equal(t, "one", pairs[0].Href)
	assert.Equal(t, "two", pairs[1].Href)
}

func TestSentenceSegmenter_SharedParentVisitedOnce(t *testing.T) {
	// Arrange: two anchors under the same parent must not double-emit
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `<p><a href="a">One</a> first. <a href="b">Two</a> second.</p>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	assert.Len(t, pairs, 2)
}

func TestSentenceSegmenter_NoAnchors(t *testing.T) {
	// Arrange
	segmenter := NewSentenceSegmenter()
	doc := parseDoc(t, `<p>Plain text only.</p>`)

	// Act
	pairs := segmenter.Segment(doc)

	// Assert
	assert.Empty(t, pairs)
}

func TestSplitSentences(t *testing.T) {
	// Act & Assert
	assert.Equal(t, []string{"One. ", "Two! ", "Three? "}, splitSentences("One. Two! Three? "))
	assert.Equal(t, []string{"Done. ", "trailing text"}, splitSentences("Done. trailing text"))
	assert.Empty(t, splitSentences(""))
}
