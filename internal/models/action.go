package models

import "github.com/customeros/unsublink/internal/enum"

// ActionOutcome reports what the action layer did with an extraction's
// primary action.
type ActionOutcome struct {
	ActionType enum.ActionType `json:"actionType"`
	Target     string          `json:"target"`

	// Performed is true when the action was executed in-process. It is false
	// when the target must be opened by the caller, i.e. the browser
	// blacklist routed the URL to the OS default browser.
	Performed bool              `json:"performed"`
	Route     enum.BrowserRoute `json:"route,omitempty"`
}
