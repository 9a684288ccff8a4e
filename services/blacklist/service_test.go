package blacklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistService_FirstMatchWins(t *testing.T) {
	// Arrange
	svc, err := NewBlacklistService(&Rules{
		Emails:  []string{`(?i)^legal@`, `(?i)^legal@corp\.com$`},
		Browser: []string{`(?i)linkedin\.com`},
	})
	require.NoError(t, err)

	// Act & Assert
	assert.True(t, svc.IsBlockedEmail("legal@corp.com"))
	assert.True(t, svc.IsBlockedEmail("LEGAL@other.org"))
	assert.False(t, svc.IsBlockedEmail("newsletter@corp.com"))
}

func TestBlacklistService_RequiresDefaultBrowser(t *testing.T) {
	// Arrange
	svc, err := NewBlacklistService(DefaultRules())
	require.NoError(t, err)

	// Act & Assert
	assert.True(t, svc.RequiresDefaultBrowser("https://www.linkedin.com/e/unsub?x=1"))
	assert.True(t, svc.RequiresDefaultBrowser("http://fortune.com/newsletters"))
	assert.False(t, svc.RequiresDefaultBrowser("https://example.com/unsubscribe"))
}

func TestBlacklistService_NilRulesFallBackToDefaults(t *testing.T) {
	// Arrange
	svc, err := NewBlacklistService(nil)
	require.NoError(t, err)

	// Act & Assert
	assert.True(t, svc.IsBlockedEmail("postmaster@example.com"))
	assert.False(t, svc.IsBlockedEmail("news@example.com"))
}

func TestBlacklistService_InvalidPattern(t *testing.T) {
	// Arrange
	rules := &Rules{Emails: []string{`(`}}

	// Act
	svc, err := NewBlacklistService(rules)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestLoadRules(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "rules.json")
	err := os.WriteFile(path, []byte(`{"emails":["^abuse@"],"browser":["facebook\\.com"]}`), 0o600)
	require.NoError(t, err)

	// Act
	rules, err := LoadRules(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"^abuse@"}, rules.Emails)
	assert.Equal(t, []string{`facebook\.com`}, rules.Browser)
}

func TestLoadRules_MissingFile(t *testing.T) {
	// Act
	rules, err := LoadRules("/nonexistent/rules.json")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, rules)
}
