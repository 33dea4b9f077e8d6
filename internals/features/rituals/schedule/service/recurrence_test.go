// file: internals/features/rituals/schedule/service/recurrence_test.go
package service

import (
	"errors"
	"testing"
	"time"
)

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		wantRule  bool // expect *InvalidRuleError
		wantRange bool // expect *InvalidRangeError
	}{
		{
			name: "valid weekly",
			rule: Rule{
				Type: RecurrenceWeekly, Interval: 1,
				DaysOfWeek: []time.Weekday{time.Tuesday},
				StartDate:  d(2024, 1, 2), EndMode: EndNever,
			},
		},
		{
			name: "weekly without weekdays",
			rule: Rule{
				Type: RecurrenceWeekly, Interval: 1,
				StartDate: d(2024, 1, 2), EndMode: EndNever,
			},
			wantRule: true,
		},
		{
			name: "zero interval",
			rule: Rule{
				Type: RecurrenceDaily, Interval: 0,
				StartDate: d(2024, 1, 2), EndMode: EndNever,
			},
			wantRule: true,
		},
		{
			name: "unknown type",
			rule: Rule{
				Type: "fortnightly", Interval: 1,
				StartDate: d(2024, 1, 2), EndMode: EndNever,
			},
			wantRule: true,
		},
		{
			name: "missing start date",
			rule: Rule{
				Type: RecurrenceDaily, Interval: 1, EndMode: EndNever,
			},
			wantRule: true,
		},
		{
			name: "monthly ordinal with two weekdays",
			rule: Rule{
				Type: RecurrenceMonthly, Interval: 1,
				DaysOfWeek:  []time.Weekday{time.Monday, time.Friday},
				WeekOfMonth: OrdinalSecond,
				StartDate:   d(2024, 1, 1), EndMode: EndNever,
			},
			wantRule: true,
		},
		{
			name: "end date before start date",
			rule: Rule{
				Type: RecurrenceDaily, Interval: 1,
				StartDate: d(2024, 5, 1),
				EndMode:   EndByDate, EndDate: d(2024, 1, 1),
			},
			wantRange: true,
		},
		{
			name: "by count with zero count",
			rule: Rule{
				Type: RecurrenceDaily, Interval: 1,
				StartDate: d(2024, 1, 1),
				EndMode:   EndByCount,
			},
			wantRange: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			switch {
			case tc.wantRule:
				var re *InvalidRuleError
				if !errors.As(err, &re) {
					t.Fatalf("got %v, want InvalidRuleError", err)
				}
			case tc.wantRange:
				var re *InvalidRangeError
				if !errors.As(err, &re) {
					t.Fatalf("got %v, want InvalidRangeError", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestRuleDescribe(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{
			name: "biweekly two days until date",
			rule: Rule{
				Type: RecurrenceWeekly, Interval: 2,
				DaysOfWeek: []time.Weekday{time.Thursday, time.Tuesday},
				StartDate:  d(2024, 1, 2),
				EndMode:    EndByDate, EndDate: d(2025, 12, 31),
			},
			want: "Every 2 weeks on Tuesday, Thursday until 2025-12-31",
		},
		{
			name: "daily",
			rule: Rule{
				Type: RecurrenceDaily, Interval: 1,
				StartDate: d(2024, 1, 1), EndMode: EndNever,
			},
			want: "Every day",
		},
		{
			name: "monthly fourth monday",
			rule: Rule{
				Type: RecurrenceMonthly, Interval: 1,
				DaysOfWeek:  []time.Weekday{time.Monday},
				WeekOfMonth: OrdinalFourth,
				StartDate:   d(2024, 1, 1), EndMode: EndNever,
			},
			want: "Every month on the 4th Monday",
		},
		{
			name: "monthly day of month with count",
			rule: Rule{
				Type: RecurrenceMonthly, Interval: 1,
				StartDate: d(2024, 1, 15),
				EndMode:   EndByCount, Count: 12,
			},
			want: "Every month on day 15, 12 occurrences",
		},
		{
			name: "yearly",
			rule: Rule{
				Type: RecurrenceYearly, Interval: 1,
				StartDate: d(2024, 4, 14), EndMode: EndNever,
			},
			want: "Every year on April 14",
		},
		{
			name: "one time",
			rule: Rule{
				Type:      RecurrenceNone,
				StartDate: d(2024, 3, 15), EndMode: EndNever,
			},
			want: "One time on 2024-03-15",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Describe(); got != tc.want {
				t.Errorf("Describe() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays([]string{"tuesday", "Thursday", " tuesday "})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != time.Tuesday || got[1] != time.Thursday {
		t.Fatalf("ParseWeekdays = %v, want [Tuesday Thursday]", got)
	}

	if _, err := ParseWeekdays([]string{"tuesday", "someday"}); err == nil {
		t.Fatal("expected error for unknown weekday token")
	}
}

func TestParseWeekOrdinal(t *testing.T) {
	tests := map[string]WeekOrdinal{
		"1st": OrdinalFirst, "first": OrdinalFirst,
		"2nd": OrdinalSecond, "4th": OrdinalFourth,
		"last": OrdinalLast, "": OrdinalUnset,
	}
	for in, want := range tests {
		got, ok := ParseWeekOrdinal(in)
		if !ok || got != want {
			t.Errorf("ParseWeekOrdinal(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ParseWeekOrdinal("5th"); ok {
		t.Error("ParseWeekOrdinal(5th) should fail")
	}
}
