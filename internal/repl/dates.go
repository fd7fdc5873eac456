package repl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateSeparator splits reminder text from an optional due date.
const dateSeparator = " @ "

var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseAddInput splits "text @ date" into its parts. The suffix after the
// last separator is only taken as a date when it parses as one; otherwise
// the whole input is the text. Without a date the reminder is due now,
// like the date picker's initial value.
func parseAddInput(input string, now time.Time) (string, time.Time) {
	input = strings.TrimSpace(input)

	// padding lets a leading or trailing "@" count as a separator
	padded := " " + input + " "
	i := strings.LastIndex(padded, dateSeparator)
	if i < 0 {
		return input, now
	}

	text := strings.TrimSpace(padded[:i])
	rest := strings.TrimSpace(padded[i+len(dateSeparator):])
	if rest == "" {
		return text, now
	}

	date, err := parseDate(rest, now.Location())
	if err != nil {
		return input, now
	}
	return text, date
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD HH:MM, YYYY-MM-DD or RFC3339)", s)
}

// parseRows converts 1-based row numbers ("1 3" or "1,3") to positions.
func parseRows(args string) ([]int, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("usage: /rm <n> [n...]")
	}

	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid row number: %s", f)
		}
		positions = append(positions, n-1)
	}
	return positions, nil
}
