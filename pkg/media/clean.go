// Package media prepares episode metadata for video publishing: it converts
// HTML show notes into plain text fit for a YouTube description and uploads
// the rendered video.
package media

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// descriptionMaxLen is the YouTube description limit
const descriptionMaxLen = 5000

var (
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
)

// CleanDescription converts HTML show notes to plain text. Links keep their
// target as "text (url)", list items become bullet lines and the result is
// truncated to the YouTube limit at a sentence or paragraph boundary.
func CleanDescription(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parse description html: %w", err)
	}

	// keep link targets visible in plain text
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		text := strings.TrimSpace(s.Text())
		if !ok || !strings.HasPrefix(href, "http") {
			return
		}
		if text == "" || text == href {
			s.ReplaceWithHtml(href)
			return
		}
		s.ReplaceWithHtml(fmt.Sprintf("%s (%s)", html.EscapeString(text), href))
	})

	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n• ")
	})
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, h1, h2, h3, h4, ul, ol").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	rendered, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render description html: %w", err)
	}

	// strip every remaining tag, then undo the sanitizer's entity escaping
	text := bluemonday.StrictPolicy().Sanitize(rendered)
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	text = strings.Join(lines, "\n")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return truncateDescription(text), nil
}

// truncateDescription cuts overlong text at the last sentence or paragraph
// boundary below the limit
func truncateDescription(text string) string {
	if len(text) <= descriptionMaxLen {
		return text
	}
	cut := text[:descriptionMaxLen-50]

	lastPeriod := strings.LastIndex(cut, ".")
	lastPara := strings.LastIndex(cut, "\n\n")
	point := lastPeriod + 1
	if lastPara > point {
		point = lastPara
	}
	if point <= 0 {
		point = len(cut)
	}
	return strings.TrimSpace(cut[:point])
}
