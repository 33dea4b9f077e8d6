// file: internals/features/rituals/schedule/service/generator.go
package service

import (
	"time"
)

// DefaultMaxOccurrences caps expansion when the caller passes maxCount <= 0.
// Guards against never-ending rules queried with a huge window.
const DefaultMaxOccurrences = 500

// GenerateOccurrences expands a rule into the concrete dates falling inside
// the inclusive [windowStart, windowEnd] window, in ascending order. The
// result is always finite: it stops at windowEnd, at the rule's own end
// condition, or at maxCount emitted dates, whichever binds first. The
// function is pure; calling it twice with the same arguments yields the same
// slice.
func GenerateOccurrences(rule Rule, windowStart, windowEnd time.Time, maxCount int) ([]time.Time, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxOccurrences
	}

	ws := dateOnly(windowStart)
	we := dateOnly(windowEnd)
	if we.Before(ws) {
		return nil, &InvalidRangeError{Reason: "window end is before window start"}
	}

	start := dateOnly(rule.StartDate)

	// Effective upper bound: the query window, tightened by a by-date end.
	limit := we
	if rule.EndMode == EndByDate {
		if end := dateOnly(rule.EndDate); end.Before(limit) {
			limit = end
		}
	}

	// emit tracks the by-count budget across the whole series, not just the
	// window: occurrences before windowStart still consume the count.
	var out []time.Time
	total := 0
	push := func(d time.Time) bool {
		total++
		if !d.Before(ws) {
			out = append(out, d)
		}
		if rule.EndMode == EndByCount && total >= rule.Count {
			return false
		}
		return len(out) < maxCount
	}

	switch rule.Type {
	case RecurrenceNone:
		if !start.Before(ws) && !start.After(limit) {
			out = append(out, start)
		}

	case RecurrenceDaily:
		for d := start; !d.After(limit); d = d.AddDate(0, 0, rule.Interval) {
			if !push(d) {
				break
			}
		}

	case RecurrenceWeekly:
		wanted := make(map[time.Weekday]bool, len(rule.DaysOfWeek))
		for _, wd := range rule.DaysOfWeek {
			wanted[wd] = true
		}
		for d := start; !d.After(limit); d = d.AddDate(0, 0, 1) {
			if !wanted[d.Weekday()] {
				continue
			}
			if weeksBetween(start, d)%rule.Interval != 0 {
				continue
			}
			if !push(d) {
				break
			}
		}

	case RecurrenceMonthly:
		first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	monthly:
		for m := first; !m.After(limit); m = m.AddDate(0, rule.Interval, 0) {
			var d time.Time
			var ok bool
			if rule.WeekOfMonth != OrdinalUnset {
				d, ok = nthWeekdayOfMonth(m.Year(), m.Month(), rule.DaysOfWeek[0], rule.WeekOfMonth)
			} else {
				d, ok = dayOfMonth(m.Year(), m.Month(), start.Day())
			}
			if !ok {
				// e.g. no 4th Monday, or no Feb 30: skip the month, no error
				continue
			}
			if d.Before(start) || d.After(limit) {
				continue
			}
			if !push(d) {
				break monthly
			}
		}

	case RecurrenceYearly:
		for y := start.Year(); ; y += rule.Interval {
			d, ok := dayOfMonth(y, start.Month(), start.Day())
			if ok {
				if d.After(limit) {
					break
				}
				if !push(d) {
					break
				}
			}
			if time.Date(y, 1, 1, 0, 0, 0, 0, start.Location()).After(limit) {
				break
			}
		}
	}

	return out, nil
}

/* =========================
   Calendar helpers
========================= */

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weeksBetween counts whole calendar weeks elapsed from base to target.
func weeksBetween(base, target time.Time) int {
	bd := dateOnly(base)
	td := dateOnly(target)
	if td.Before(bd) {
		return -int(bd.Sub(td).Hours() / 24 / 7)
	}
	return int(td.Sub(bd).Hours() / 24 / 7)
}

// nthWeekdayOfMonth resolves e.g. the 4th Monday of a month. ok=false when
// the month has no such day.
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, ordinal WeekOrdinal) (time.Time, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	firstHit := first.AddDate(0, 0, offset)

	if ordinal == OrdinalLast {
		last := firstHit
		for {
			next := last.AddDate(0, 0, 7)
			if next.Month() != month {
				return last, true
			}
			last = next
		}
	}

	d := firstHit.AddDate(0, 0, 7*(int(ordinal)-1))
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// dayOfMonth builds year/month/day, reporting ok=false when the day does not
// exist in that month (Feb 30, Apr 31, Feb 29 off leap years).
func dayOfMonth(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}
