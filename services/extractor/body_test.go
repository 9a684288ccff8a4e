package extractor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLinkExtractor_AnchorWithKeywordText(t *testing.T) {
	// Arrange
	extractor := NewBodyLinkExtractor()
	body := `<html><body><p><a href="https://news.example.com/u1">Unsubscribe</a></p></body></html>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, hrefs)
	for _, href := range hrefs {
		assert.Equal(t, "https://news.example.com/u1", href)
	}
}

func TestBodyLinkExtractor_KeywordInHref(t *testing.T) {
	// Arrange
	extractor := NewBodyLinkExtractor()
	body := `<p><a href="https://news.example.com/unsubscribe?u=1">Click here</a></p>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, hrefs)
	assert.Equal(t, "https://news.example.com/unsubscribe?u=1", hrefs[0])
}

func TestBodyLinkExtractor_SentenceCarriesTheKeyword(t *testing.T) {
	// Arrange: the anchor text alone has no signal, the sentence does
	extractor := NewBodyLinkExtractor()
	body := `<p>Click <a href="https://news.example.com/u2">here</a> to unsubscribe.</p>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, hrefs, "https://news.example.com/u2")
}

func TestBodyLinkExtractor_OneEmitPerMatchingPattern(t *testing.T) {
	// Arrange: href matches "unsubscribe", inner text matches "opt out", and
	// the segmenter pair repeats both, so the same href appears four times.
	extractor := NewBodyLinkExtractor()
	body := `<p><a href="http://news.example.com/unsubscribe">Opt out</a></p>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	require.Len(t, hrefs, 4)
	for _, href := range hrefs {
		assert.Equal(t, "http://news.example.com/unsubscribe", href)
	}
}

func TestBodyLinkExtractor_PlaceholderHrefSkipped(t *testing.T) {
	// Arrange: the sentinel is skipped at the direct-anchor stage; the
	// segmenter pair still carries it.
	extractor := NewBodyLinkExtractor()
	body := `<p><a href="blank">Unsubscribe</a></p>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"blank"}, hrefs)
}

func TestBodyLinkExtractor_NoKeywordNoCandidates(t *testing.T) {
	// Arrange
	extractor := NewBodyLinkExtractor()
	body := `<p><a href="https://example.com/article">Read the full story.</a></p>`

	// Act
	hrefs, err := extractor.Extract(body)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, hrefs)
}

func TestBodyLinkExtractor_EmptyBody(t *testing.T) {
	// Act
	hrefs, err := NewBodyLinkExtractor().Extract("")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, hrefs)
}

func TestBodyLinkExtractor_LocaleCoverage(t *testing.T) {
	tests := []struct {
		locale string
		phrase string
	}{
		{"en", "Unsubscribe"},
		{"en", "Opt out"},
		{"en", "Manage your email preferences"},
		{"en", "Pause your subscription"},
		{"en", "Notification settings"},
		{"da", "Afmeld nyhedsbrevet"},
		{"es", "Desuscribirse de la lista"},
		{"es", "Darse de baja"},
		{"fr", "Se désabonner"},
		{"fr", "Se désinscrire"},
		{"ru", "отписаться от рассылки"},
		{"sr", "одјавите се"},
		{"is", "afskrá mig"},
		{"he", "הסרה מרשימת התפוצה"},
		{"ht", "dezabòne"},
		{"zh-Hans", "退订"},
		{"zh-Hant", "取消訂閱"},
		{"ar", "إلغاء الاشتراك"},
		{"hy", "բաժանորդագրությունը չեղարկել"},
		{"de", "Newsletter abbestellen"},
		{"de", "Hier abmelden"},
	}

	extractor := NewBodyLinkExtractor()

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.phrase, func(t *testing.T) {
			// Arrange
			body := fmt.Sprintf(`<p><a href="https://news.example.com/u">%s</a></p>`, tt.phrase)

			// Act
			hrefs, err := extractor.Extract(body)

			// Assert
			require.NoError(t, err)
			require.NotEmpty(t, hrefs, "phrase %q should match a keyword pattern", tt.phrase)
			assert.Equal(t, "https://news.example.com/u", hrefs[0])
		})
	}
}

func TestKeywordPatterns_TableShape(t *testing.T) {
	// Arrange
	patterns := KeywordPatterns()

	// Assert: every entry carries a locale and a compiled pattern
	require.NotEmpty(t, patterns)
	for _, entry := range patterns {
		assert.NotEmpty(t, entry.Locale)
		assert.NotNil(t, entry.Pattern)
	}
}
