package models

import (
	"strings"
)

const HeaderListUnsubscribe = "List-Unsubscribe"

// Message is the fully materialized content of one email message, as handed to
// the extraction pipeline. The pipeline treats it as a value object and never
// mutates it.
type Message struct {
	ID        string
	MailboxID string
	Subject   string
	From      string
	Headers   map[string]string
	BodyHTML  string

	// Category is the account folder tag the message was found under,
	// e.g. "Sent Mail" or "Inbox".
	Category string
	IsDraft  bool
}

// Header returns the named header value, matched case-insensitively. Missing
// headers yield an empty string.
func (m *Message) Header(name string) string {
	if v, ok := m.Headers[name]; ok {
		return v
	}
	for k, v := range m.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// IsSentMail reports whether the message sits in the account's sent folder.
// Outgoing mail is never a candidate for unsubscription.
func (m *Message) IsSentMail() bool {
	return strings.Contains(strings.ToLower(m.Category), "sent")
}

// HasContent reports whether there is anything for the extractors to look at.
func (m *Message) HasContent() bool {
	return len(m.Headers) > 0 || m.BodyHTML != ""
}
