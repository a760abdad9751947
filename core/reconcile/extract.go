package reconcile

import (
	"regexp"
	"strconv"
	"strings"
)

// markerPattern matches "L" followed by the digits, an optional colon and the rest.
// Digit width is checked separately since RE2 has no lookahead.
var markerPattern = regexp.MustCompile(`(?s)^L(\d+):?(.*)$`)

// Extract returns one LineEntry per paragraph that starts with a marker.
// Paragraphs are trimmed first; those without a marker are skipped.
func Extract(paragraphs []string) []LineEntry {
	entries := make([]LineEntry, 0, len(paragraphs))
	for _, p := range paragraphs {
		if entry, ok := ParseMarker(p); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// ParseMarker parses a single paragraph. ok is false when the paragraph does not
// start with a marker or the marker has more than MaxMarkerDigits digits.
func ParseMarker(paragraph string) (entry LineEntry, ok bool) {
	m := markerPattern.FindStringSubmatch(strings.TrimSpace(paragraph))
	if m == nil || len(m[1]) > MaxMarkerDigits {
		return LineEntry{}, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return LineEntry{}, false
	}

	return LineEntry{Number: n, Payload: strings.TrimSpace(m[2])}, true
}

// FormatLine renders an entry as "L{number}: {payload}", or "L{number}" when
// payload is empty.
func FormatLine(number int, payload string) string {
	if payload == "" {
		return "L" + strconv.Itoa(number)
	}
	return "L" + strconv.Itoa(number) + ": " + payload
}
