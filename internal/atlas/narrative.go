package atlas

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// NarrativeEvent is one of a person's life events with its place name
// already looked up.
type NarrativeEvent struct {
	Type  string
	Date  string
	Place string
}

// narrativeEpoch is the default sort position for unparseable dates.
var narrativeEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006",
}

var yearRe = regexp.MustCompile(`\b(\d{4})\b`)

// parseEventDate parses the free-text dates imports carry ("12 MAR 1900",
// "1900", "1900-03-12"). Anything unparseable sorts as 1900-01-01.
func parseEventDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return narrativeEpoch
	}

	for _, layout := range dateLayouts {
		// GEDCOM months are uppercase; time.Parse wants "Mar".
		if t, err := time.Parse(layout, titleizeMonths(s)); err == nil {
			return t
		}
	}
	if m := yearRe.FindString(s); m != "" {
		if t, err := time.Parse("2006", m); err == nil {
			return t
		}
	}
	return narrativeEpoch
}

func titleizeMonths(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if len(f) == 3 && f == strings.ToUpper(f) {
			fields[i] = f[:1] + strings.ToLower(f[1:])
		}
	}
	return strings.Join(fields, " ")
}

// BuildNarrative turns one person's events into a template-driven sentence.
// Events are sorted by parsed date; unknown event types contribute nothing;
// the person's notes are appended verbatim.
func BuildNarrative(name, notes string, events []NarrativeEvent) string {
	sorted := make([]NarrativeEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseEventDate(sorted[i].Date).Before(parseEventDate(sorted[j].Date))
	})

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("'s journey began ")

	for _, ev := range sorted {
		switch ev.Type {
		case "birth":
			sb.WriteString("with their birth in ")
			sb.WriteString(placeWithDate(ev))
		case "migration":
			sb.WriteString(", followed by their migration to ")
			sb.WriteString(placeWithDate(ev))
		case "death":
			sb.WriteString(", and their life concluded in ")
			sb.WriteString(placeWithDate(ev))
		}
	}
	sb.WriteString(".")

	if notes != "" {
		sb.WriteString(" ")
		sb.WriteString(notes)
	}
	return sb.String()
}

func placeWithDate(ev NarrativeEvent) string {
	if ev.Date == "" {
		return ev.Place
	}
	return ev.Place + " in " + ev.Date
}
