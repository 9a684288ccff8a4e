package extractor

import (
	"regexp"
	"strings"

	"github.com/customeros/unsublink/interfaces"
	"github.com/customeros/unsublink/internal/utils"
)

var mailtoRegex = regexp.MustCompile(`(?i)^mailto:`)

// mailtoAddress extracts the bare address from a mailto href, dropping the
// scheme and any embedded mail headers (subject=, body=, ...).
func mailtoAddress(href string) string {
	address := mailtoRegex.ReplaceAllString(href, "")
	if idx := strings.Index(address, "?"); idx >= 0 {
		address = address[:idx]
	}
	return address
}

// HeaderLinkExtractor turns a raw list-unsubscribe header value into candidate
// hrefs. Mailto tokens are screened against the email blacklist by their bare
// address; everything else passes through untouched. Routing policy for
// browser links is applied later, by the action layer.
type HeaderLinkExtractor struct {
	blacklist interfaces.BlacklistService
}

func NewHeaderLinkExtractor(blacklist interfaces.BlacklistService) *HeaderLinkExtractor {
	return &HeaderLinkExtractor{blacklist: blacklist}
}

// Extract returns the candidate hrefs in header token order. An absent header
// yields an empty list; there is no error path.
func (e *HeaderLinkExtractor) Extract(headerValue string) []string {
	if headerValue == "" {
		return nil
	}

	var candidates []string
	for _, token := range strings.Split(headerValue, ",") {
		token = utils.TrimAngleBrackets(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if mailtoRegex.MatchString(token) && e.blacklist.IsBlockedEmail(mailtoAddress(token)) {
			continue
		}
		candidates = append(candidates, token)
	}
	return candidates
}
