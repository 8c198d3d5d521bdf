package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonDigit   = regexp.MustCompile(`\D`)
	nonAlnum   = regexp.MustCompile(`[^A-Z0-9]`)
	// two letter registry prefix such as RC or BN, with optional separators
	idPrefix = regexp.MustCompile(`^[A-Z]{2}[\s\-/]*`)
	trailing = regexp.MustCompile(`[\s.,;]+$`)

	dmySlash = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dMonY    = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{4})$`)
	ymdDash  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	ymdSlash = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
)

// Longer phrases come first so "limited" inside them is not rewritten early.
var companySuffixes = []struct { //nolint: gochecknoglobals
	re   *regexp.Regexp
	repl string
}{
	{re: regexp.MustCompile(`\bpublic limited company\b`), repl: "plc"},
	{re: regexp.MustCompile(`\bprivate limited company\b`), repl: "ltd"},
	{re: regexp.MustCompile(`\blimited liability company\b`), repl: "llc"},
	{re: regexp.MustCompile(`\bincorporated\b`), repl: "inc"},
	{re: regexp.MustCompile(`\blimited\b`), repl: "ltd"},
}

var months = map[string]int{ //nolint: gochecknoglobals
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeString lower-cases s, trims it and collapses inner whitespace.
func NormalizeString(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// NormalizeGender maps M/Male to "male" and F/Female to "female". Other
// values are returned normalized but otherwise untouched.
func NormalizeGender(s string) string {
	switch g := NormalizeString(s); g {
	case "m", "male":
		return "male"
	case "f", "female":
		return "female"
	default:
		return g
	}
}

// NormalizeCompanyName canonicalizes legal-entity suffixes ("Limited" becomes
// "ltd", "Public Limited Company" becomes "plc", ...) and strips trailing
// punctuation. It is idempotent.
func NormalizeCompanyName(s string) string {
	n := NormalizeString(s)
	for _, sfx := range companySuffixes {
		n = sfx.re.ReplaceAllString(n, sfx.repl)
	}

	return trailing.ReplaceAllString(n, "")
}

// NormalizeIdentityNumber strips a leading two letter prefix (RC, BN, ...)
// and every non-alphanumeric character, so "RC-123-456", "rc123456" and
// "123456" all normalize to "123456".
func NormalizeIdentityNumber(s string) string {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = idPrefix.ReplaceAllString(n, "")

	return nonAlnum.ReplaceAllString(n, "")
}

// NormalizePhone keeps digits only and rewrites the 234 country code to a
// leading 0.
func NormalizePhone(s string) string {
	n := nonDigit.ReplaceAllString(s, "")
	if rest, ok := strings.CutPrefix(n, "234"); ok {
		return "0" + rest
	}

	return n
}

// ParseDate accepts DD/MM/YYYY, DD-MMM-YYYY, YYYY-MM-DD and YYYY/MM/DD and
// returns the date as YYYY-MM-DD. Any other shape is reported as unparsable.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := dmySlash.FindStringSubmatch(s); m != nil {
		return canonicalDate(m[3], m[2], m[1]), true
	}
	if m := dMonY.FindStringSubmatch(s); m != nil {
		month, ok := months[strings.ToLower(m[2])]
		if !ok {
			return "", false
		}

		return canonicalDate(m[3], fmt.Sprint(month), m[1]), true
	}
	if m := ymdDash.FindStringSubmatch(s); m != nil {
		return canonicalDate(m[1], m[2], m[3]), true
	}
	if m := ymdSlash.FindStringSubmatch(s); m != nil {
		return canonicalDate(m[1], m[2], m[3]), true
	}

	return "", false
}

func canonicalDate(year, month, day string) string {
	return year + "-" + pad2(month) + "-" + pad2(day)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}

	return s
}
