package extractor

import "regexp"

// KeywordPattern is one locale-tagged entry in the unsubscribe phrase table.
type KeywordPattern struct {
	Locale  string
	Pattern *regexp.Regexp
}

// keywordPatterns is the fixed table of phrases that indicate unsubscribe
// intent. It is immutable configuration; body extraction emits one candidate
// per matching entry, so table order is significant. Removing an entry
// silently disables detection for that language.
var keywordPatterns = []KeywordPattern{
	{"en", regexp.MustCompile(`(?i)unsubscribe`)},
	{"en", regexp.MustCompile(`(?i)opt[ -]?out`)},
	{"en", regexp.MustCompile(`(?i)email preferences`)},
	{"en", regexp.MustCompile(`(?i)subscription`)},
	{"en", regexp.MustCompile(`(?i)notification settings`)},
	{"da", regexp.MustCompile(`(?i)afmeld`)},
	{"es", regexp.MustCompile(`(?i)desuscribir`)},
	{"es", regexp.MustCompile(`(?i)darse de baja`)},
	{"fr", regexp.MustCompile(`(?i)d[ée]sabonner`)},
	{"fr", regexp.MustCompile(`(?i)d[ée]sinscrire`)},
	{"ru", regexp.MustCompile(`(?i)отписаться`)},
	{"sr", regexp.MustCompile(`(?i)одјав`)},
	{"is", regexp.MustCompile(`(?i)afskrá`)},
	{"he", regexp.MustCompile(`הסרה`)},
	{"ht", regexp.MustCompile(`(?i)dezab[oò]ne`)},
	{"zh-Hans", regexp.MustCompile(`退订`)},
	{"zh-Hant", regexp.MustCompile(`取消訂閱`)},
	{"ar", regexp.MustCompile(`إلغاء الاشتراك`)},
	{"hy", regexp.MustCompile(`բաժանորդագր`)},
	{"de", regexp.MustCompile(`(?i)abbestellen`)},
	{"de", regexp.MustCompile(`(?i)abmelden`)},
}

// KeywordPatterns exposes the table for diagnostics and tests.
func KeywordPatterns() []KeywordPattern {
	return keywordPatterns
}
