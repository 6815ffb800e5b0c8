package normalize

import (
	"errors"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnparseableDate is returned when an utterance cannot be resolved to a calendar
// date. Controllers turn it into a re-ask of the same question.
var ErrUnparseableDate = errors.New("unparseable date")

// DateLayout is the canonical wire format for all resolved dates.
const DateLayout = "2006-01-02"

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// Explicit calendar layouts, tried before the natural-language parser. Year-less
// layouts resolve against the current year and roll forward if already past.
var dateLayouts = []string{
	DateLayout,
	"2 January 2006",
	"January 2 2006",
	"2 January",
	"January 2",
	"2 Jan",
	"Jan 2",
}

// Date resolves a natural-language date expression ("tomorrow", "next friday",
// "25 December") to a calendar date, biased towards the nearest future occurrence.
func Date(input string, now time.Time) (time.Time, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return time.Time{}, ErrUnparseableDate
	}

	today := truncateToDay(now)

	// Explicit layouts win: the natural-language parser matches fragments inside
	// strings like "2026-09-01" and would resolve the whole thing to the base date.
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		if parsed.Year() == 0 {
			parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
		}
		return futureBias(truncateToDay(parsed), today), nil
	}

	// Only accept a natural-language match that covers the entire utterance; a
	// partial match means the parser latched onto a fragment.
	if r, err := dateParser.Parse(text, now); err == nil && r != nil && strings.TrimSpace(r.Text) == text {
		return futureBias(truncateToDay(r.Time), today), nil
	}

	return time.Time{}, ErrUnparseableDate
}

// DateString resolves like Date and formats the result canonically.
func DateString(input string, now time.Time) (string, error) {
	t, err := Date(input, now)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// futureBias pushes past-sounding dates to their next occurrence, one year at a time.
func futureBias(t, today time.Time) time.Time {
	for t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}
