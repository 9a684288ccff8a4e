package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/customeros/unsublink/internal/models"
)

// sentenceTerminatorRegex matches a run of characters ending in '.', '!' or
// '?', optionally followed by whitespace.
var sentenceTerminatorRegex = regexp.MustCompile(`[^.!?]*[.!?]\s*`)

// SentenceSegmenter associates bare anchors ("click here") with the sentence
// text around them, so the keyword table can match on the prose when the
// anchor text alone carries no signal. It is a best-effort heuristic, not a
// grammatical parser; occasional mis-segmentation on unusual markup is
// acceptable.
type SentenceSegmenter struct{}

func NewSentenceSegmenter() *SentenceSegmenter {
	return &SentenceSegmenter{}
}

// Segment walks the document and returns (href, sentence) pairs for every
// anchor whose sentence could be recovered, in first-appearance order of the
// anchors' parent elements.
func (s *SentenceSegmenter) Segment(doc *goquery.Document) []models.RawCandidate {
	var pairs []models.RawCandidate
	for _, parent := range anchorParents(doc) {
		pairs = append(pairs, segmentParent(parent)...)
	}
	return pairs
}

// anchorParents collects the distinct immediate parents of anchors, visiting
// anchors in document order and keeping each parent the first time it is seen.
func anchorParents(doc *goquery.Document) []*goquery.Selection {
	var parents []*goquery.Selection
	seen := make(map[*html.Node]bool)

	doc.Find("a").Each(func(_ int, anchor *goquery.Selection) {
		parent := anchor.Parent()
		if len(parent.Nodes) == 0 || seen[parent.Nodes[0]] {
			return
		}
		seen[parent.Nodes[0]] = true
		parents = append(parents, parent)
	})
	return parents
}

// segmentParent iterates a parent's direct children in document order,
// carrying a pending-link slot and a leftover-text buffer. A sentence
// terminator flushes the pending link with the accumulated text; a trailing
// unterminated sentence is flushed at the end.
func segmentParent(parent *goquery.Selection) []models.RawCandidate {
	var out []models.RawCandidate

	pendingHref := ""
	havePending := false
	leftover := ""

	parent.Contents().Each(func(_ int, child *goquery.Selection) {
		if child.Is("a") {
			if havePending && strings.TrimSpace(leftover) != "" {
				out = append(out, models.RawCandidate{Href: pendingHref, InnerText: leftover})
				leftover = ""
			}
			if href, ok := child.Attr("href"); ok {
				pendingHref = href
				havePending = true
			}
		}

		text := child.Text()
		if sentenceTerminatorRegex.MatchString(text) {
			for _, segment := range splitSentences(text) {
				if strings.TrimSpace(segment) == "" {
					continue
				}
				if havePending {
					out = append(out, models.RawCandidate{Href: pendingHref, InnerText: leftover + segment})
					havePending = false
					leftover = ""
				} else {
					leftover += segment
				}
			}
		} else {
			leftover += text
		}

		// separator so adjacent element text does not run together
		leftover += " "
	})

	if havePending && strings.TrimSpace(leftover) != "" {
		out = append(out, models.RawCandidate{Href: pendingHref, InnerText: leftover})
	}

	return out
}

// splitSentences splits text at terminator boundaries, keeping any trailing
// unterminated run as a final segment.
func splitSentences(text string) []string {
	var segments []string
	last := 0
	for _, match := range sentenceTerminatorRegex.FindAllStringIndex(text, -1) {
		segments = append(segments, text[match[0]:match[1]])
		last = match[1]
	}
	if last < len(text) {
		segments = append(segments, text[last:])
	}
	return segments
}
