package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Loose parsing helpers for the CSV import. The input comes from hand-filled
// spreadsheets, so every field is treated as hostile: odd date formats,
// thousands separators, stray spaces and accented header names all appear in
// real exports.

var (
	badYearPrefix = regexp.MustCompile(`^002(\d-)`)
	spanishAM     = regexp.MustCompile(`(?i)a\.\s*m\.`)
	spanishPM     = regexp.MustCompile(`(?i)p\.\s*m\.`)
	gmtSuffix     = regexp.MustCompile(`(?i)\s*GMT[-+]\d+\s*$`)
	spaceRun      = regexp.MustCompile(`\s+`)

	diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2/1/2006 3:04:05 PM",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"02/01/2006",
}

// normalizeKey lowercases a header name, strips diacritics and collapses
// whitespace, so "Patente del Vehículo" matches the hint "patente".
func normalizeKey(s string) string {
	stripped, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		stripped = s
	}
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(stripped)), " ")
}

// findColumn returns the index of the first header containing any of the
// hints (after normalization), or -1.
func findColumn(headers []string, hints ...string) int {
	for i, h := range headers {
		nk := normalizeKey(h)
		for _, hint := range hints {
			if strings.Contains(nk, hint) {
				return i
			}
		}
	}
	return -1
}

// detectDelimiter picks the delimiter occurring most often in the header
// line, defaulting to comma.
func detectDelimiter(line string) rune {
	best, count := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if c := strings.Count(line, string(d)); c > count {
			best, count = d, c
		}
	}
	return best
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseIntLoose extracts the digits of a free-form number ("45.000 km").
// Values outside a plausible odometer range are rejected.
func parseIntLoose(s string) *int {
	digits := digitsOnly(s)
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 3_000_000 {
		return nil
	}
	return &n
}

// parseMoney parses an amount written with Spanish separators
// ("1.234,56" -> 1234.56).
func parseMoney(s string) *float64 {
	t := strings.ReplaceAll(s, ".", "")
	t = strings.ReplaceAll(t, ",", ".")
	t = strings.ReplaceAll(t, " ", "")
	if t == "" {
		return nil
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseDateLoose parses the date formats seen in real exports, including the
// "002x-" year typo and Spanish AM/PM markers. Returns nil when nothing
// matches.
func parseDateLoose(s string) *time.Time {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	t = badYearPrefix.ReplaceAllString(t, "202$1")
	t = spanishAM.ReplaceAllString(t, "AM")
	t = spanishPM.ReplaceAllString(t, "PM")
	t = gmtSuffix.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, t); err == nil {
			return &parsed
		}
	}
	return nil
}

// splitVehicleDescription splits a combined "brand model year" field. The
// first token is the brand, a 4-digit token is the year, the rest is the
// model.
func splitVehicleDescription(s string) (brand, model *string, year *int) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, nil, nil
	}
	brand = &tokens[0]

	var modelTokens []string
	for _, tok := range tokens[1:] {
		if len(tok) == 4 && digitsOnly(tok) == tok {
			if y, err := strconv.Atoi(tok); err == nil && year == nil {
				year = &y
				continue
			}
		}
		modelTokens = append(modelTokens, tok)
	}
	if len(modelTokens) > 0 {
		joined := strings.Join(modelTokens, " ")
		model = &joined
	}
	return brand, model, year
}
