package extractor

import (
	"github.com/customeros/unsublink/internal/enum"
	"github.com/customeros/unsublink/internal/models"
)

// Classification is the typed, ordered outcome of classifying raw hrefs.
type Classification struct {
	Links    []models.ClassifiedLink
	HasEmail bool
}

// LinkClassifier resolves raw hrefs to action types, normalizes email targets
// and stably reorders the list so email actions come first.
type LinkClassifier struct{}

func NewLinkClassifier() *LinkClassifier {
	return &LinkClassifier{}
}

// Classify partitions hrefs into email and browser actions. The partition is
// stable: each group keeps its relative input order. Email targets are
// normalized to the bare address between "mailto:" and the first "?"; browser
// targets carry the href unchanged. Empty input yields empty output.
func (c *LinkClassifier) Classify(hrefs []string) Classification {
	var emails, browsers []models.ClassifiedLink

	for _, href := range hrefs {
		if mailtoRegex.MatchString(href) {
			emails = append(emails, models.ClassifiedLink{
				Target:     mailtoAddress(href),
				ActionType: enum.ActionEmail,
			})
		} else {
			browsers = append(browsers, models.ClassifiedLink{
				Target:     href,
				ActionType: enum.ActionBrowser,
			})
		}
	}

	return Classification{
		Links:    append(emails, browsers...),
		HasEmail: len(emails) > 0,
	}
}
