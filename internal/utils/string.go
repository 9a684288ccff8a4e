package utils

import (
	"regexp"
	"strings"
)

var forwardedPrefixRegex = regexp.MustCompile(`(?i)^(Fwd?|Fw)(\[\d+\])?:`)

// IsForwardedSubject reports whether a subject line starts with a
// forwarded-message marker, case-insensitively.
func IsForwardedSubject(subject string) bool {
	return forwardedPrefixRegex.MatchString(strings.TrimSpace(subject))
}

// TrimAngleBrackets strips one leading and one trailing bracket character, as
// used around list-unsubscribe header tokens and message IDs.
func TrimAngleBrackets(s string) string {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}

func NormalizeMessageID(messageID string) string {
	return TrimAngleBrackets(strings.TrimSpace(messageID))
}
