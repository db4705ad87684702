package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/speclex"
)

// Pattern fragments for dates and times.
const (
	datePattern  = `(?:\d\d)?\d{2}[\-/\.]\d{2}[\-/\.]\d{2}`
	tsSepPattern = `[T\s]`
	timePattern  = `\d?\d:\d{2}(?::\d{2}(?:\.\d+)?)?(?:\s?(?:[AaPp][Mm]|Z)\b)?`
	tzPattern    = `(?:Z|[\+\-]\d{2}:\d{2})`
)

// Patterns to take matches apart again.
var (
	dateParts = regexp2.MustCompile(
		`^((?:\d\d)?\d{2})[\-/\.](\d{2})[\-/\.](\d{2})$`, regexp2.None)
	timestampParts = regexp2.MustCompile(
		`^((?:\d\d)?\d{2})[\-/\.](\d{2})[\-/\.](\d{2})[T\s](.+)$`, regexp2.None)
	clockParts = regexp2.MustCompile(
		`^(\d?\d):(\d{2})(?::(\d{2})(?:\.(\d+))?)?\s?(?:([AaPp])[Mm]|([Zz]))?([\+\-]\d{2}:\d{2}|[Zz])?$`,
		regexp2.None)
)

// Timestamp creates a spec for type TIMESTAMP. Values are of type time.Time.
// Timestamps without a zone are taken as UTC.
func Timestamp() *speclex.TokenSpec {
	return speclex.MustSpec(TIMESTAMP,
		fmt.Sprintf("%s%s%s%s?", datePattern, tsSepPattern, timePattern, tzPattern),
		speclex.WithConverter(convertTimestamp))
}

// Date creates a spec for type DATE. Values are of type time.Time, at
// midnight UTC. Year, month and day may be separated by '-', '/' or '.'.
func Date() *speclex.TokenSpec {
	return speclex.MustSpec(DATE, datePattern, speclex.WithConverter(convertDate))
}

// Time creates a spec for type TIME. Values are of type Clock.
// 12-hour clock times ("9:00 PM") are converted to a 24-hour clock.
func Time() *speclex.TokenSpec {
	return speclex.MustSpec(TIME, timePattern+tzPattern+"?", speclex.WithConverter(convertClock))
}

// RelDate creates a spec for type RELDATE: words for relative dates and
// periods like "tomorrow", "weekend" or "Q3".
func RelDate() *speclex.TokenSpec {
	var alts []string
	for _, w := range []string{
		"day", "yesterday", "today", "tomorrow",
		"week", "weekend", "weekday",
		"month", "year",
		"winter", "spring", "summer", "fall",
		"Q[1-4]",
	} {
		alts = append(alts, fmt.Sprintf("[%s%s]%s", strings.ToLower(w[:1]), strings.ToUpper(w[:1]), w[1:]))
	}
	return speclex.MustSpec(RELDATE, wordBounded(alts))
}

// Month creates a spec for type MONTH, matching English month names and
// their abbreviations. With subtypes given (e.g. Months), tokens are
// classified with SubtypeAssignment.
func Month(subtypes ...Subtype) *speclex.TokenSpec {
	return speclex.MustSpec(MONTH, wordBounded(names(Months)),
		speclex.WithClassifier(SubtypeAssignment(subtypes)))
}

// Day creates a spec for type DAY, matching English weekday names and
// their abbreviations. With subtypes given (e.g. Weekdays), tokens are
// classified with SubtypeAssignment.
func Day(subtypes ...Subtype) *speclex.TokenSpec {
	return speclex.MustSpec(DAY, wordBounded(names(Weekdays)),
		speclex.WithClassifier(SubtypeAssignment(subtypes)))
}

func wordBounded(alternatives []string) string {
	return `\b(?:` + strings.Join(alternatives, "|") + `)\b`
}

// --- Clock times -----------------------------------------------------------

// Clock is a time of day, optionally with a zone.
type Clock struct {
	Hour, Minute, Second int
	Nanosecond           int
	Zone                 *time.Location // nil for clock times without a zone
}

// Offset returns the zone offset of c in seconds east of UTC.
func (c Clock) Offset() int {
	if c.Zone == nil {
		return 0
	}
	_, off := time.Date(2000, 1, 1, c.Hour, c.Minute, 0, 0, c.Zone).Zone()
	return off
}

// Equal is true if c and other denote the same time of day in the same
// zone offset.
func (c Clock) Equal(other Clock) bool {
	return c.Hour == other.Hour && c.Minute == other.Minute && c.Second == other.Second &&
		c.Nanosecond == other.Nanosecond && (c.Zone == nil) == (other.Zone == nil) &&
		c.Offset() == other.Offset()
}

// On returns the clock time at a given date. Clock times without a zone
// are taken as UTC.
func (c Clock) On(year int, month time.Month, day int) time.Time {
	loc := c.Zone
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(year, month, day, c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
}

func (c Clock) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	if c.Nanosecond != 0 {
		fmt.Fprintf(&b, ".%09d", c.Nanosecond)
	}
	if c.Zone != nil {
		off, sign := c.Offset(), '+'
		if off < 0 {
			off, sign = -off, '-'
		}
		fmt.Fprintf(&b, "%c%02d:%02d", sign, off/3600, off%3600/60)
	}
	return b.String()
}

// --- Converters ------------------------------------------------------------

func convertDate(raw string) (interface{}, error) {
	groups, err := submatches(dateParts, raw)
	if err != nil {
		return nil, err
	}
	return makeDate(groups[1], groups[2], groups[3])
}

func convertClock(raw string) (interface{}, error) {
	return parseClock(raw)
}

func convertTimestamp(raw string) (interface{}, error) {
	groups, err := submatches(timestampParts, raw)
	if err != nil {
		return nil, err
	}
	date, err := makeDate(groups[1], groups[2], groups[3])
	if err != nil {
		return nil, err
	}
	clock, err := parseClock(groups[4])
	if err != nil {
		return nil, err
	}
	return clock.On(date.Year(), date.Month(), date.Day()), nil
}

func makeDate(y, m, d string) (time.Time, error) {
	year, err := number("year", y)
	if err != nil {
		return time.Time{}, err
	}
	month, err := number("month", m)
	if err != nil {
		return time.Time{}, err
	}
	day, err := number("day", d)
	if err != nil {
		return time.Time{}, err
	}
	if len(y) == 2 { // pivot two-digit years
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	// day 0 of the following month is the last day of this month
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > last {
		return time.Time{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func parseClock(s string) (Clock, error) {
	groups, err := submatches(clockParts, s)
	if err != nil {
		return Clock{}, err
	}
	var c Clock
	if c.Hour, err = number("hour", groups[1]); err != nil {
		return Clock{}, err
	}
	if c.Minute, err = number("minute", groups[2]); err != nil {
		return Clock{}, err
	}
	if groups[3] != "" {
		if c.Second, err = number("second", groups[3]); err != nil {
			return Clock{}, err
		}
	}
	if c.Nanosecond, err = nanoseconds(groups[4]); err != nil {
		return Clock{}, err
	}
	if ampm := strings.ToLower(groups[5]); ampm != "" {
		if c.Hour < 1 || c.Hour > 12 {
			return Clock{}, fmt.Errorf("hour %d out of range for 12-hour clock", c.Hour)
		}
		c.Hour %= 12
		if ampm == "p" {
			c.Hour += 12
		}
	}
	if c.Hour > 23 {
		return Clock{}, fmt.Errorf("hour %d out of range", c.Hour)
	} else if c.Minute > 59 {
		return Clock{}, fmt.Errorf("minute %d out of range", c.Minute)
	} else if c.Second > 59 {
		return Clock{}, fmt.Errorf("second %d out of range", c.Second)
	}
	if groups[6] != "" || strings.EqualFold(groups[7], "z") {
		c.Zone = time.UTC
	} else if groups[7] != "" {
		if c.Zone, err = parseOffset(groups[7]); err != nil {
			return Clock{}, err
		}
	}
	return c, nil
}

// parseOffset parses a zone offset of the form "+hh:mm" or "-hh:mm".
func parseOffset(tz string) (*time.Location, error) {
	h, err := number("zone offset", tz[1:3])
	if err != nil {
		return nil, err
	}
	m, err := number("zone offset", tz[4:6])
	if err != nil {
		return nil, err
	}
	if h > 23 || m > 59 {
		return nil, fmt.Errorf("zone offset %s out of range", tz)
	}
	secs := h*3600 + m*60
	if tz[0] == '-' {
		secs = -secs
	}
	return time.FixedZone("", secs), nil
}

// nanoseconds interprets a string of digits as a decimal fraction of a second.
func nanoseconds(frac string) (int, error) {
	if frac == "" {
		return 0, nil
	}
	if !isASCIIDigits(frac) {
		return 0, fmt.Errorf("invalid fraction of second %q", frac)
	}
	if len(frac) > 9 {
		frac = frac[:9]
	}
	return strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
}

// number converts a date or time field. \d matches any Unicode decimal
// digit, so fields may contain digits strconv does not accept.
func number(field, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, digits, err)
	}
	return n, nil
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// submatches matches s against re and returns all groups, with unmatched
// groups as empty strings.
func submatches(re *regexp2.Regexp, s string) ([]string, error) {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("malformed input %q", s)
	}
	groups := m.Groups()
	parts := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) > 0 {
			parts[i] = g.String()
		}
	}
	return parts, nil
}
