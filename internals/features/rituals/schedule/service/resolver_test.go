// file: internals/features/rituals/schedule/service/resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func makeInstances(t *testing.T, seriesID uuid.UUID, dates ...time.Time) []Instance {
	t.Helper()
	out := make([]Instance, 0, len(dates))
	for _, day := range dates {
		out = append(out, Instance{
			ID:           InstanceID(seriesID, day),
			SeriesID:     seriesID,
			OriginalDate: day,
			Date:         day,
			StartTime:    mustTod(t, "06:00"),
			Title:        "Morning Aarti",
			Location:     "Main Hall",
			Officiant:    "Pandit Sharma",
			Status:       StatusScheduled,
		})
	}
	return out
}

func TestInstanceIDDeterministic(t *testing.T) {
	seriesID := uuid.MustParse("0e7e7b60-16c8-4a10-9a3e-17d1a1a1a1a1")
	day := d(2024, 1, 9)

	if InstanceID(seriesID, day) != InstanceID(seriesID, day) {
		t.Fatal("same series and date must yield the same id")
	}
	if InstanceID(seriesID, day) == InstanceID(seriesID, d(2024, 1, 16)) {
		t.Fatal("different dates must yield different ids")
	}
	if InstanceID(seriesID, day) == InstanceID(uuid.New(), day) {
		t.Fatal("different series must yield different ids")
	}
}

func TestApplyExceptionsCancelStaysVisible(t *testing.T) {
	seriesID := uuid.New()
	instances := makeInstances(t, seriesID, d(2024, 1, 2), d(2024, 1, 9), d(2024, 1, 16))

	got := ApplyExceptions(instances, map[string]ExceptionOverride{
		"2024-01-09": {Kind: ExceptionCancel, Reason: "Priest unavailable"},
	})

	if len(got) != 3 {
		t.Fatalf("cancelled occurrence must stay visible, got %d instances", len(got))
	}
	if got[1].Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", got[1].Status)
	}
	if got[1].ExceptionReason != "Priest unavailable" {
		t.Errorf("reason = %q", got[1].ExceptionReason)
	}
	// neighbours untouched
	if got[0].Status != StatusScheduled || got[2].Status != StatusScheduled {
		t.Error("instances without exceptions must pass through unchanged")
	}
}

func TestApplyExceptionsReschedule(t *testing.T) {
	seriesID := uuid.New()
	instances := makeInstances(t, seriesID, d(2024, 1, 9))

	newDate := d(2024, 1, 10)
	newTime := mustTod(t, "07:00")
	got := ApplyExceptions(instances, map[string]ExceptionOverride{
		"2024-01-09": {
			Kind:         ExceptionReschedule,
			NewDate:      &newDate,
			NewStartTime: &newTime,
			Reason:       "Moved for festival",
		},
	})

	inst := got[0]
	if !inst.Date.Equal(newDate) {
		t.Errorf("date = %s, want 2024-01-10", inst.Date.Format("2006-01-02"))
	}
	if inst.StartTime.Format("15:04") != "07:00" {
		t.Errorf("start time = %s, want 07:00", inst.StartTime.Format("15:04"))
	}
	if inst.RescheduledFrom == nil || !inst.RescheduledFrom.Equal(d(2024, 1, 9)) {
		t.Error("rescheduled occurrence must carry its original date")
	}
	// identity is keyed to the original date, not the new one
	if !inst.OriginalDate.Equal(d(2024, 1, 9)) {
		t.Error("original date must stay fixed under reschedule")
	}
	if inst.ID != InstanceID(seriesID, d(2024, 1, 9)) {
		t.Error("instance id must stay derived from the original date")
	}
}

func TestApplyExceptionsFieldOverrides(t *testing.T) {
	seriesID := uuid.New()
	instances := makeInstances(t, seriesID, d(2024, 1, 2), d(2024, 1, 9))

	officiant := "Pandit Rao"
	location := "Riverside Pavilion"
	got := ApplyExceptions(instances, map[string]ExceptionOverride{
		"2024-01-02": {Kind: ExceptionChangeOfficiant, NewOfficiant: &officiant},
		"2024-01-09": {Kind: ExceptionChangeLocation, NewLocation: &location},
	})

	if got[0].Officiant != "Pandit Rao" {
		t.Errorf("officiant = %q", got[0].Officiant)
	}
	if got[0].Location != "Main Hall" {
		t.Error("officiant override must not touch location")
	}
	if got[1].Location != "Riverside Pavilion" {
		t.Errorf("location = %q", got[1].Location)
	}
	if got[1].Officiant != "Pandit Sharma" {
		t.Error("location override must not touch officiant")
	}
}

func TestApplyExceptionsNoOverrides(t *testing.T) {
	seriesID := uuid.New()
	instances := makeInstances(t, seriesID, d(2024, 1, 2))

	got := ApplyExceptions(instances, nil)
	if len(got) != 1 || got[0].Status != StatusScheduled {
		t.Fatal("empty overlay must return instances unchanged")
	}
}
