package models

import (
	"github.com/customeros/unsublink/internal/enum"
)

// RawCandidate is an unclassified, unfiltered href discovered by an extractor,
// together with the inner text used for keyword matching. Direct anchors carry
// their own rendered text; segmenter pairs carry the surrounding sentence.
type RawCandidate struct {
	Href      string
	InnerText string
}

// ClassifiedLink is a candidate link resolved to an action type and a
// normalized target. Email targets carry a bare address with no angle brackets
// and no query string; browser targets carry the href unmodified.
type ClassifiedLink struct {
	Target     string          `json:"target"`
	ActionType enum.ActionType `json:"actionType"`
}

// ExtractionResult is the outcome of running the pipeline over one message.
// It is created with ConditionLoading, moved exactly once to a terminal
// condition, and immutable afterwards. Link order is significant: the first
// element is the suggested primary action.
type ExtractionResult struct {
	Condition   enum.ExtractionCondition `json:"condition"`
	HasLinks    bool                     `json:"hasLinks"`
	Links       []ClassifiedLink         `json:"links"`
	IsForwarded bool                     `json:"isForwarded"`
	ConfirmText string                   `json:"confirmText"`
}

// PrimaryAction returns the first classified link, if any.
func (r *ExtractionResult) PrimaryAction() (ClassifiedLink, bool) {
	if len(r.Links) == 0 {
		return ClassifiedLink{}, false
	}
	return r.Links[0], true
}
