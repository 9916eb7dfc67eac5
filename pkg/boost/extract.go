package boost

import (
	"regexp"
	"strconv"
	"strings"
)

// plausible donation bounds, satoshis. Anything outside is page noise.
const (
	minPlausibleSats = 1
	maxPlausibleSats = 10_000_000
)

// SatsPerBTC converts bitcoin amounts to satoshis
const SatsPerBTC = 100_000_000

var (
	numberRe     = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*(?:\.\d+)?\b`)
	satsSuffixRe = regexp.MustCompile(`(?i)\s+sats\b`)
	satsAmountRe = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*)\s*(?:sats?|satoshis?)\b`)
	btcAmountRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*btc\b`)
)

// Extractor pulls goal and current donation amounts out of cleaned
// funding-page text.
type Extractor struct {
	FinalGoal int64 // configured funding target, used when only one number is present
}

// Amounts is the result of a text extraction. A zero field means the value
// was not found.
type Amounts struct {
	Goal    int64
	Current int64
}

// Parse finds the goal and the current donation total in text. With two or
// more plausible numbers the larger is taken as the goal; when the top two
// are within 10% of each other magnitude ordering is ambiguous and the
// first-seen order in the text wins instead. A single number is the current
// total with the configured final goal as the target. No numbers means no
// observation.
func (e Extractor) Parse(text string) Amounts {
	if strings.TrimSpace(text) == "" {
		return Amounts{}
	}

	cleaned := satsSuffixRe.ReplaceAllString(text, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	var distinct []int64
	seen := map[int64]struct{}{}
	total := 0
	for _, tok := range numberRe.FindAllString(cleaned, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		n := int64(v)
		if n < minPlausibleSats || n > maxPlausibleSats {
			continue
		}
		total++
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			distinct = append(distinct, n)
		}
	}

	switch {
	case total >= 2:
		goal, current := topTwo(distinct)
		if current > 0 && float64(goal-current) < float64(goal)*0.1 {
			// nearly equal values, trust the order they appear in the text
			goal, current = distinct[0], distinct[1]
		}
		return Amounts{Goal: goal, Current: current}
	case total == 1:
		return Amounts{Goal: e.FinalGoal, Current: distinct[0]}
	}
	return Amounts{}
}

// DonationAmount returns the best-guess current donation total from text,
// zero when no signal is present. Falls back to explicit unit-suffixed
// amounts ("21000 sats", "0.0002 btc") when structured extraction fails.
func (e Extractor) DonationAmount(text string) int64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	amounts := e.Parse(text)
	if amounts.Current > 0 {
		return amounts.Current
	}
	if amounts.Goal > 0 && amounts.Goal != e.FinalGoal {
		// no current total but a goal that differs from the configured one
		return amounts.Goal
	}
	return fallbackAmount(text)
}

// topTwo returns the two largest distinct values, second is zero when there
// is only one distinct value
func topTwo(distinct []int64) (first, second int64) {
	for _, n := range distinct {
		switch {
		case n > first:
			first, second = n, first
		case n > second:
			second = n
		}
	}
	return first, second
}

func fallbackAmount(text string) int64 {
	if m := satsAmountRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			return int64(v)
		}
	}
	if m := btcAmountRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int64(v * SatsPerBTC)
		}
	}
	return 0
}
