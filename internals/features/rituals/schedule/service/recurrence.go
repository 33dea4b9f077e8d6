// file: internals/features/rituals/schedule/service/recurrence.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

/* =========================
   Recurrence rule (pure value)
========================= */

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

type EndMode string

const (
	EndNever   EndMode = "never"
	EndByDate  EndMode = "by_date"
	EndByCount EndMode = "by_count"
)

// WeekOrdinal selects the week-of-month for monthly rules. Zero means unset
// (monthly falls back to same day-of-month as the start date).
type WeekOrdinal int

const (
	OrdinalUnset  WeekOrdinal = 0
	OrdinalFirst  WeekOrdinal = 1
	OrdinalSecond WeekOrdinal = 2
	OrdinalThird  WeekOrdinal = 3
	OrdinalFourth WeekOrdinal = 4
	OrdinalLast   WeekOrdinal = 5
)

var ordinalLabels = map[WeekOrdinal]string{
	OrdinalFirst:  "1st",
	OrdinalSecond: "2nd",
	OrdinalThird:  "3rd",
	OrdinalFourth: "4th",
	OrdinalLast:   "last",
}

func ParseWeekOrdinal(s string) (WeekOrdinal, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OrdinalUnset, true
	case "1st", "first":
		return OrdinalFirst, true
	case "2nd", "second":
		return OrdinalSecond, true
	case "3rd", "third":
		return OrdinalThird, true
	case "4th", "fourth":
		return OrdinalFourth, true
	case "last":
		return OrdinalLast, true
	default:
		return OrdinalUnset, false
	}
}

func (o WeekOrdinal) String() string {
	if s, ok := ordinalLabels[o]; ok {
		return s
	}
	return ""
}

// Rule describes how a ritual series repeats. Dates are naive calendar dates;
// no timezone arithmetic is performed.
type Rule struct {
	Type        RecurrenceType
	Interval    int // every N units; ignored for type=none
	DaysOfWeek  []time.Weekday
	WeekOfMonth WeekOrdinal
	StartDate   time.Time
	EndMode     EndMode
	EndDate     time.Time // used when EndMode=by_date
	Count       int       // used when EndMode=by_count
}

/* =========================
   Errors
========================= */

// InvalidRuleError reports a rule that is structurally wrong for its type.
type InvalidRuleError struct {
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return "invalid recurrence rule: " + e.Reason
}

// InvalidRangeError reports an impossible end condition.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return "invalid recurrence range: " + e.Reason
}

/* =========================
   Validation
========================= */

// Validate enforces the per-type structural invariants.
func (r Rule) Validate() error {
	switch r.Type {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
	default:
		return &InvalidRuleError{Reason: fmt.Sprintf("unknown recurrence type %q", string(r.Type))}
	}

	if r.StartDate.IsZero() {
		return &InvalidRuleError{Reason: "start date is required"}
	}

	if r.Type != RecurrenceNone && r.Interval < 1 {
		return &InvalidRuleError{Reason: "interval must be a positive integer"}
	}

	if r.Type == RecurrenceWeekly && len(r.DaysOfWeek) == 0 {
		return &InvalidRuleError{Reason: "weekly rules require at least one weekday"}
	}

	if r.Type == RecurrenceMonthly && r.WeekOfMonth != OrdinalUnset && len(r.DaysOfWeek) != 1 {
		return &InvalidRuleError{Reason: "monthly week-of-month rules require exactly one weekday"}
	}

	switch r.EndMode {
	case EndNever:
	case EndByDate:
		if r.EndDate.IsZero() {
			return &InvalidRuleError{Reason: "end date is required for by-date rules"}
		}
		if dateOnly(r.EndDate).Before(dateOnly(r.StartDate)) {
			return &InvalidRangeError{Reason: "end date is before start date"}
		}
	case EndByCount:
		if r.Count < 1 {
			return &InvalidRangeError{Reason: "occurrence count must be at least 1"}
		}
	default:
		return &InvalidRuleError{Reason: fmt.Sprintf("unknown end mode %q", string(r.EndMode))}
	}

	return nil
}

/* =========================
   Description
========================= */

// Describe renders the rule as a human sentence, e.g.
// "Every 2 weeks on Tuesday, Thursday until 2025-12-31".
func (r Rule) Describe() string {
	var b strings.Builder

	switch r.Type {
	case RecurrenceNone:
		return "One time on " + r.StartDate.Format("2006-01-02")
	case RecurrenceDaily:
		if r.Interval == 1 {
			b.WriteString("Every day")
		} else {
			fmt.Fprintf(&b, "Every %d days", r.Interval)
		}
	case RecurrenceWeekly:
		if r.Interval == 1 {
			b.WriteString("Every week")
		} else {
			fmt.Fprintf(&b, "Every %d weeks", r.Interval)
		}
		if len(r.DaysOfWeek) > 0 {
			b.WriteString(" on " + weekdayList(r.DaysOfWeek))
		}
	case RecurrenceMonthly:
		if r.Interval == 1 {
			b.WriteString("Every month")
		} else {
			fmt.Fprintf(&b, "Every %d months", r.Interval)
		}
		if r.WeekOfMonth != OrdinalUnset && len(r.DaysOfWeek) == 1 {
			fmt.Fprintf(&b, " on the %s %s", r.WeekOfMonth, r.DaysOfWeek[0])
		} else {
			fmt.Fprintf(&b, " on day %d", r.StartDate.Day())
		}
	case RecurrenceYearly:
		if r.Interval == 1 {
			b.WriteString("Every year")
		} else {
			fmt.Fprintf(&b, "Every %d years", r.Interval)
		}
		fmt.Fprintf(&b, " on %s %d", r.StartDate.Month(), r.StartDate.Day())
	default:
		return ""
	}

	switch r.EndMode {
	case EndByDate:
		b.WriteString(" until " + r.EndDate.Format("2006-01-02"))
	case EndByCount:
		if r.Count == 1 {
			b.WriteString(", 1 occurrence")
		} else {
			fmt.Fprintf(&b, ", %d occurrences", r.Count)
		}
	}

	return b.String()
}

func weekdayList(days []time.Weekday) string {
	sorted := append([]time.Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

/* =========================
   Weekday token codec (text[] column values)
========================= */

var weekdayTokens = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, bool) {
	d, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

func ParseWeekdays(tokens []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(tokens))
	seen := make(map[time.Weekday]bool, len(tokens))
	for _, t := range tokens {
		d, ok := ParseWeekday(t)
		if !ok {
			return nil, &InvalidRuleError{Reason: fmt.Sprintf("unknown weekday token %q", t)}
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}

func WeekdayToken(d time.Weekday) string {
	return strings.ToLower(d.String())
}
