// file: internals/features/rituals/schedule/service/status_test.go
package service

import (
	"errors"
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	allowed := map[OccurrenceStatus][]OccurrenceStatus{
		StatusScheduled: {StatusOnTime, StatusDelayed, StatusCancelled, StatusCompleted},
		StatusDelayed:   {StatusOnTime, StatusCompleted},
		StatusOnTime:    {StatusCompleted},
		StatusCompleted: {},
		StatusCancelled: {},
	}
	all := []OccurrenceStatus{StatusScheduled, StatusOnTime, StatusDelayed, StatusCancelled, StatusCompleted}

	for from, targets := range allowed {
		ok := make(map[OccurrenceStatus]bool, len(targets))
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			if got := from.CanTransitionTo(to); got != ok[to] {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, ok[to])
			}
		}
	}
}

func TestValidateTransitionDelayedRequiresTime(t *testing.T) {
	err := ValidateTransition(StatusScheduled, StatusChange{
		NewStatus: StatusDelayed,
		Reason:    "Priest stuck in traffic",
	})

	var te *InvalidTransitionError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want InvalidTransitionError", err)
	}
	if te.MissingField != "delayed_to_time" {
		t.Errorf("missing field = %q, want delayed_to_time", te.MissingField)
	}
}

func TestValidateTransitionReasonRequired(t *testing.T) {
	tod := mustTod(t, "08:30")

	for _, target := range []OccurrenceStatus{StatusDelayed, StatusCancelled} {
		change := StatusChange{NewStatus: target}
		if target == StatusDelayed {
			change.DelayedTo = &tod
		}

		err := ValidateTransition(StatusScheduled, change)
		var te *InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("%s without reason: got %v, want InvalidTransitionError", target, err)
		}
		if te.MissingField != "reason" {
			t.Errorf("%s: missing field = %q, want reason", target, te.MissingField)
		}
	}
}

func TestValidateTransitionTerminalStates(t *testing.T) {
	for _, from := range []OccurrenceStatus{StatusCompleted, StatusCancelled} {
		err := ValidateTransition(from, StatusChange{NewStatus: StatusOnTime})
		var te *InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("from %s: got %v, want InvalidTransitionError", from, err)
		}
		if te.MissingField != "" {
			t.Errorf("from %s: expected illegal move, not missing field", from)
		}
	}
}

func TestValidateTransitionHappyPaths(t *testing.T) {
	tod := mustTod(t, "08:30")

	cases := []struct {
		from   OccurrenceStatus
		change StatusChange
	}{
		{StatusScheduled, StatusChange{NewStatus: StatusOnTime}},
		{StatusScheduled, StatusChange{NewStatus: StatusDelayed, DelayedTo: &tod, Reason: "Flood on route"}},
		{StatusScheduled, StatusChange{NewStatus: StatusCancelled, Reason: "Storm warning"}},
		{StatusDelayed, StatusChange{NewStatus: StatusCompleted}},
		{StatusOnTime, StatusChange{NewStatus: StatusCompleted}},
		// empty current status defaults to scheduled
		{"", StatusChange{NewStatus: StatusOnTime}},
	}
	for _, tc := range cases {
		if err := ValidateTransition(tc.from, tc.change); err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.change.NewStatus, err)
		}
	}
}

func TestValidateTransitionUnknownStatus(t *testing.T) {
	if err := ValidateTransition(StatusScheduled, StatusChange{NewStatus: "paused"}); err == nil {
		t.Fatal("expected error for unknown target status")
	}
}

func TestParseOccurrenceStatus(t *testing.T) {
	got, ok := ParseOccurrenceStatus(" On-Time ")
	if !ok || got != StatusOnTime {
		t.Errorf("ParseOccurrenceStatus(on-time) = %v, %v", got, ok)
	}
	if _, ok := ParseOccurrenceStatus("postponed"); ok {
		t.Error("ParseOccurrenceStatus(postponed) should fail")
	}
}
