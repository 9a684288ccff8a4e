package blacklist

import (
	"encoding/json"
	"os"
	"regexp"

	"github.com/pkg/errors"

	"github.com/customeros/unsublink/interfaces"
)

// Rules is the blacklist rule set: two ordered lists of regex sources.
// Order matters for diagnostics only; the boolean outcome is order-free.
type Rules struct {
	Emails  []string `json:"emails"`
	Browser []string `json:"browser"`
}

// DefaultRules covers the addresses and sites we never want automation to
// touch, used when no rules file is configured.
func DefaultRules() *Rules {
	return &Rules{
		Emails: []string{
			`(?i)^legal@`,
			`(?i)^compliance@`,
			`(?i)^abuse@`,
			`(?i)^postmaster@`,
		},
		Browser: []string{
			`(?i)slashdot\.org`,
			`(?i)fortune\.com`,
			`(?i)linkedin\.com`,
			`(?i)facebook\.com`,
		},
	}
}

// LoadRules reads a rule set from a JSON file with the keys "emails" and
// "browser".
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read blacklist rules")
	}
	rules := &Rules{}
	if err := json.Unmarshal(data, rules); err != nil {
		return nil, errors.Wrap(err, "parse blacklist rules")
	}
	return rules, nil
}

type blacklistService struct {
	emailPatterns   []*regexp.Regexp
	browserPatterns []*regexp.Regexp
}

func NewBlacklistService(rules *Rules) (interfaces.BlacklistService, error) {
	if rules == nil {
		rules = DefaultRules()
	}

	emailPatterns, err := compile(rules.Emails)
	if err != nil {
		return nil, err
	}
	browserPatterns, err := compile(rules.Browser)
	if err != nil {
		return nil, err
	}

	return &blacklistService{
		emailPatterns:   emailPatterns,
		browserPatterns: browserPatterns,
	}, nil
}

func compile(sources []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(sources))
	for _, source := range sources {
		pattern, err := regexp.Compile(source)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid blacklist pattern %q", source)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// matches does a linear scan; the first matching pattern wins.
func matches(patterns []*regexp.Regexp, target string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(target) {
			return true
		}
	}
	return false
}

func (s *blacklistService) IsBlockedEmail(address string) bool {
	return matches(s.emailPatterns, address)
}

func (s *blacklistService) RequiresDefaultBrowser(url string) bool {
	return matches(s.browserPatterns, url)
}
