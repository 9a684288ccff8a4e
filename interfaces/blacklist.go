package interfaces

// BlacklistService answers policy questions about unsubscribe targets. Rules
// are loaded once at startup and never change for the process lifetime.
type BlacklistService interface {
	// IsBlockedEmail reports whether an address must never be auto-emailed
	// (e.g. legal or compliance boxes).
	IsBlockedEmail(address string) bool

	// RequiresDefaultBrowser reports whether a URL must be routed to the OS
	// default browser instead of an embedded view.
	RequiresDefaultBrowser(url string) bool
}
