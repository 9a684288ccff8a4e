package enum

type ActionType string

const (
	ActionEmail   ActionType = "email"
	ActionBrowser ActionType = "browser"
)

func (t ActionType) String() string {
	return string(t)
}

type ExtractionCondition string

const (
	ConditionLoading  ExtractionCondition = "loading"
	ConditionDone     ExtractionCondition = "done"
	ConditionDisabled ExtractionCondition = "disabled"
	ConditionErrored  ExtractionCondition = "errored"
)

func (t ExtractionCondition) String() string {
	return string(t)
}

// Terminal reports whether the condition is one of the end states of an
// extraction. Loading is the only non-terminal condition.
func (t ExtractionCondition) Terminal() bool {
	return t != ConditionLoading
}

type BrowserRoute string

const (
	BrowserRouteEmbedded BrowserRoute = "embedded"
	BrowserRouteDefault  BrowserRoute = "default"
)

func (t BrowserRoute) String() string {
	return string(t)
}
