// file: internals/features/rituals/schedule/service/generator_test.go
package service

import (
	"testing"
	"time"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datesEqual(t *testing.T, got []time.Time, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %s, want %s", i, got[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func TestGenerateWeeklyTuesdays(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Tuesday},
		StartDate:  d(2024, 1, 2),
		EndMode:    EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 1, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 2), d(2024, 1, 9), d(2024, 1, 16), d(2024, 1, 23), d(2024, 1, 30),
	})
}

func TestGenerateBiweeklyMultipleDays(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Tuesday, time.Thursday},
		StartDate:  d(2024, 1, 2),
		EndMode:    EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 1, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	// week 0: Jan 2 (Tue), Jan 4 (Thu); week 2: Jan 16, 18; week 4: Jan 30
	datesEqual(t, got, []time.Time{
		d(2024, 1, 2), d(2024, 1, 4),
		d(2024, 1, 16), d(2024, 1, 18),
		d(2024, 1, 30),
	})
}

func TestGenerateMonthlyFourthMonday(t *testing.T) {
	rule := Rule{
		Type:        RecurrenceMonthly,
		Interval:    1,
		DaysOfWeek:  []time.Weekday{time.Monday},
		WeekOfMonth: OrdinalFourth,
		StartDate:   d(2024, 1, 1),
		EndMode:     EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 4, 30), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 22), d(2024, 2, 26), d(2024, 3, 25), d(2024, 4, 22),
	})
}

func TestGenerateMonthlyLastSunday(t *testing.T) {
	rule := Rule{
		Type:        RecurrenceMonthly,
		Interval:    1,
		DaysOfWeek:  []time.Weekday{time.Sunday},
		WeekOfMonth: OrdinalLast,
		StartDate:   d(2024, 1, 1),
		EndMode:     EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 3, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 28), d(2024, 2, 25), d(2024, 3, 31),
	})
}

func TestGenerateMonthlyDayOfMonthSkipsShortMonths(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceMonthly,
		Interval:  1,
		StartDate: d(2024, 1, 31),
		EndMode:   EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 5, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	// February and April have no 31st: skipped without error
	datesEqual(t, got, []time.Time{
		d(2024, 1, 31), d(2024, 3, 31), d(2024, 5, 31),
	})
}

func TestGenerateYearlySkipsFeb29OffLeapYears(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceYearly,
		Interval:  1,
		StartDate: d(2024, 2, 29),
		EndMode:   EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2028, 12, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 2, 29), d(2028, 2, 29),
	})
}

func TestGenerateByDateEndBindsBeforeWindow(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Tuesday},
		StartDate:  d(2024, 1, 2),
		EndMode:    EndByDate,
		EndDate:    d(2024, 1, 16),
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 1, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 2), d(2024, 1, 9), d(2024, 1, 16),
	})
}

func TestGenerateByCountConsumedBeforeWindow(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceDaily,
		Interval:  1,
		StartDate: d(2024, 1, 1),
		EndMode:   EndByCount,
		Count:     5,
	}

	// Jan 1 and Jan 2 fall before the window but still consume the budget.
	got, err := GenerateOccurrences(rule, d(2024, 1, 3), d(2024, 1, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 3), d(2024, 1, 4), d(2024, 1, 5),
	})
}

func TestGenerateByCountExact(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Tuesday},
		StartDate:  d(2024, 1, 2),
		EndMode:    EndByCount,
		Count:      3,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 12, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{
		d(2024, 1, 2), d(2024, 1, 9), d(2024, 1, 16),
	})
}

func TestGenerateNeverEndingRuleIsBounded(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceDaily,
		Interval:  1,
		StartDate: d(2024, 1, 1),
		EndMode:   EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2030, 12, 31), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d occurrences, want cap of 10", len(got))
	}
}

func TestGenerateOneTime(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceNone,
		StartDate: d(2024, 3, 15),
		EndMode:   EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 3, 1), d(2024, 3, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, got, []time.Time{d(2024, 3, 15)})

	// outside the window: nothing
	got, err = GenerateOccurrences(rule, d(2024, 4, 1), d(2024, 4, 30), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		StartDate:  d(2024, 1, 1),
		EndMode:    EndNever,
	}

	a, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 6, 30), 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 6, 30), 0)
	if err != nil {
		t.Fatal(err)
	}
	datesEqual(t, a, b)
}

func TestGenerateWeeklyEmitsOnlyRequestedWeekdays(t *testing.T) {
	rule := Rule{
		Type:       RecurrenceWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Wednesday, time.Saturday},
		StartDate:  d(2024, 1, 1),
		EndMode:    EndNever,
	}

	got, err := GenerateOccurrences(rule, d(2024, 1, 1), d(2024, 3, 31), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected occurrences")
	}
	for _, day := range got {
		if wd := day.Weekday(); wd != time.Wednesday && wd != time.Saturday {
			t.Errorf("generated %s which is a %s", day.Format("2006-01-02"), wd)
		}
	}
}

func TestGenerateInvertedWindowRejected(t *testing.T) {
	rule := Rule{
		Type:      RecurrenceDaily,
		Interval:  1,
		StartDate: d(2024, 1, 1),
		EndMode:   EndNever,
	}

	if _, err := GenerateOccurrences(rule, d(2024, 2, 1), d(2024, 1, 1), 0); err == nil {
		t.Fatal("expected error for window end before window start")
	}
}
