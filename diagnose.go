package siteprobe

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
)

// Diagnose applies the listing selectors to the first sample blocks of doc.
// When the container selector finds nothing the report has no records and
// ErrCriticalSelectorMiss is returned.
func Diagnose(doc *goquery.Document, sample int) (r vo.DiagnosticReport, err error) {
	items := doc.Find(SelectorContainer)
	r = vo.DiagnosticReport{
		Selector: SelectorContainer,
		Found:    items.Length(),
		Sample:   sample,
		Records:  []vo.ExtractionRecord{},
	}
	if r.Found == 0 {
		return r, failure.New(ErrCriticalSelectorMiss,
			failure.Message("the main selector '"+SelectorContainer+"' found 0 items"),
		)
	}
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= sample {
			return false
		}
		r.Records = append(r.Records, extractRecord(item))
		return true
	})
	return r, nil
}

func extractRecord(item *goquery.Selection) vo.ExtractionRecord {
	record := vo.ExtractionRecord{
		Title:      vo.NotFound,
		Link:       vo.NotFound,
		Identifier: vo.NotFound,
		Subtitle:   vo.NotFound,
	}
	if title := item.Find(SelectorTitle).First(); title.Length() > 0 {
		record.Title = orNotFound(strings.TrimSpace(title.Text()))
		href, _ := title.Attr(AttributeLink)
		record.Link = orNotFound(href)
	}
	if thumb := item.Find(SelectorIdentifier).First(); thumb.Length() > 0 {
		// verbatim, the site renders numeric ids as strings
		id, _ := thumb.Attr(AttributeIdentifier)
		record.Identifier = orNotFound(id)
	}
	if subtitle := item.Find(SelectorSubtitle).First(); subtitle.Length() > 0 {
		record.Subtitle = orNotFound(strings.TrimSpace(subtitle.Text()))
	}
	return record
}

func orNotFound(value string) string {
	if value == "" {
		return vo.NotFound
	}
	return value
}

// RunDiagnostic fetches the homepage and diagnoses it. Transport errors abort
// without any records.
func RunDiagnostic(ctx context.Context, c *Client, conf *config.Config, m *Metrics) (r vo.DiagnosticReport, err error) {
	targetURL := conf.Homepage()
	r = vo.DiagnosticReport{
		TargetURL: targetURL,
		Selector:  SelectorContainer,
		Sample:    conf.Sample,
		Records:   []vo.ExtractionRecord{},
	}
	if !conf.IgnoreRobots {
		r.Warnings = checkRobots(ctx, c, conf.BaseURL, "/")
	}
	doc, resp, errDoc := c.GetDocument(ctx, targetURL)
	if resp != nil {
		m.observeRequest(metricsLabelHomepage, resp.Duration)
	}
	if errDoc != nil {
		return r, errDoc
	}
	diagnosis, errDiagnose := Diagnose(doc, conf.Sample)
	diagnosis.TargetURL = targetURL
	diagnosis.Warnings = r.Warnings
	m.observeDiagnosis(diagnosis)
	return diagnosis, errDiagnose
}
