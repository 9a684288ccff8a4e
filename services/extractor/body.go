package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/customeros/unsublink/internal/models"
)

// placeholderHref is a legacy sentinel some templates put on anchors that have
// no real target.
const placeholderHref = "blank"

// BodyLinkExtractor finds candidate unsubscribe hrefs in an HTML body by
// keyword-matching anchors and segmenter pairs against the locale table.
type BodyLinkExtractor struct {
	segmenter *SentenceSegmenter
}

func NewBodyLinkExtractor() *BodyLinkExtractor {
	return &BodyLinkExtractor{segmenter: NewSentenceSegmenter()}
}

// Extract returns candidate hrefs in discovery order: direct anchors first,
// then sentence-segmenter pairs. A candidate is emitted once per keyword
// pattern matching either its href or its inner text, so the output may
// contain duplicates; downstream stages are order- and duplicate-tolerant.
func (e *BodyLinkExtractor) Extract(bodyHTML string) ([]string, error) {
	if bodyHTML == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		return nil, errors.Wrap(err, "parse html body")
	}

	var candidates []models.RawCandidate
	doc.Find("a").Each(func(_ int, anchor *goquery.Selection) {
		href, ok := anchor.Attr("href")
		if !ok || href == placeholderHref {
			return
		}
		candidates = append(candidates, models.RawCandidate{Href: href, InnerText: anchor.Text()})
	})
	candidates = append(candidates, e.segmenter.Segment(doc)...)

	var hrefs []string
	for _, candidate := range candidates {
		for _, entry := range keywordPatterns {
			if entry.Pattern.MatchString(candidate.Href) || entry.Pattern.MatchString(candidate.InnerText) {
				hrefs = append(hrefs, candidate.Href)
			}
		}
	}
	return hrefs, nil
}
