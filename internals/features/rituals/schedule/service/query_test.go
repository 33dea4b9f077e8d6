// file: internals/features/rituals/schedule/service/query_test.go
package service

import (
	"testing"
	"time"

	"github.com/lib/pq"

	schedModel "templeku_backend/internals/features/rituals/schedule/model"
	seriesModel "templeku_backend/internals/features/rituals/series/model"
)

func TestRuleFromSeries(t *testing.T) {
	endDate := d(2025, 12, 31)
	ordinal := "4th"

	m := &seriesModel.RitualSeriesModel{
		RitualSeriesRecurrenceType:     "weekly",
		RitualSeriesRecurrenceInterval: 2,
		RitualSeriesDaysOfWeek:         pq.StringArray{"tuesday", "thursday"},
		RitualSeriesStartDate:          d(2024, 1, 2),
		RitualSeriesEndMode:            "by_date",
		RitualSeriesEndDate:            &endDate,
	}

	rule, err := RuleFromSeries(m)
	if err != nil {
		t.Fatal(err)
	}
	if rule.Type != RecurrenceWeekly || rule.Interval != 2 {
		t.Errorf("rule = %+v", rule)
	}
	if len(rule.DaysOfWeek) != 2 || rule.DaysOfWeek[0] != time.Tuesday || rule.DaysOfWeek[1] != time.Thursday {
		t.Errorf("days = %v", rule.DaysOfWeek)
	}
	if rule.EndMode != EndByDate || !rule.EndDate.Equal(endDate) {
		t.Errorf("end = %s %s", rule.EndMode, rule.EndDate)
	}
	if err := rule.Validate(); err != nil {
		t.Errorf("round-tripped rule must validate: %v", err)
	}

	m.RitualSeriesRecurrenceType = "monthly"
	m.RitualSeriesDaysOfWeek = pq.StringArray{"monday"}
	m.RitualSeriesWeekOfMonth = &ordinal
	rule, err = RuleFromSeries(m)
	if err != nil {
		t.Fatal(err)
	}
	if rule.WeekOfMonth != OrdinalFourth {
		t.Errorf("ordinal = %v, want fourth", rule.WeekOfMonth)
	}
}

func TestRuleFromSeriesBadTokens(t *testing.T) {
	m := &seriesModel.RitualSeriesModel{
		RitualSeriesRecurrenceType:     "weekly",
		RitualSeriesRecurrenceInterval: 1,
		RitualSeriesDaysOfWeek:         pq.StringArray{"funday"},
		RitualSeriesStartDate:          d(2024, 1, 2),
		RitualSeriesEndMode:            "never",
	}
	if _, err := RuleFromSeries(m); err == nil {
		t.Fatal("expected error for unknown weekday token")
	}

	bad := "5th"
	m.RitualSeriesDaysOfWeek = pq.StringArray{"monday"}
	m.RitualSeriesWeekOfMonth = &bad
	if _, err := RuleFromSeries(m); err == nil {
		t.Fatal("expected error for unknown week-of-month selector")
	}
}

func TestNoticeSendAt(t *testing.T) {
	at := time.Date(2024, 1, 9, 6, 0, 0, 0, time.UTC)

	if got := noticeSendAt(schedModel.NotifyOneHour, at); !got.Equal(at.Add(-time.Hour)) {
		t.Errorf("1h-before = %s", got)
	}
	if got := noticeSendAt(schedModel.NotifyTwentyFourHr, at); !got.Equal(at.Add(-24*time.Hour)) {
		t.Errorf("24h-before = %s", got)
	}
	// immediate resolves to "about now"
	got := noticeSendAt(schedModel.NotifyImmediate, at)
	if time.Since(got) > time.Minute {
		t.Errorf("immediate = %s, want near now", got)
	}
}

func TestFilterInstances(t *testing.T) {
	// filterInstances compacts its argument in place, so build fresh input
	// for every call.
	instances := func() []Instance {
		return []Instance{
			{Location: "Main Hall", Officiant: "Pandit Sharma", Status: StatusScheduled},
			{Location: "Riverside Pavilion", Officiant: "Pandit Rao", Status: StatusCancelled},
			{Location: "Main Hall", Officiant: "Pandit Rao", Status: StatusCompleted},
		}
	}

	got := filterInstances(instances(), QueryParams{Location: "main hall"})
	if len(got) != 2 {
		t.Errorf("location filter: got %d, want 2", len(got))
	}

	got = filterInstances(instances(), QueryParams{Officiant: "pandit rao"})
	if len(got) != 2 {
		t.Errorf("officiant filter: got %d, want 2", len(got))
	}

	got = filterInstances(instances(), QueryParams{Status: StatusCancelled})
	if len(got) != 1 || got[0].Location != "Riverside Pavilion" {
		t.Errorf("status filter: got %v", got)
	}

	got = filterInstances(instances(), QueryParams{Location: "main hall", Officiant: "pandit rao"})
	if len(got) != 1 || got[0].Status != StatusCompleted {
		t.Errorf("combined filter: got %v", got)
	}
}
