// file: internals/features/rituals/schedule/service/resolver.go
package service

import (
	"time"

	"github.com/google/uuid"

	"templeku_backend/internals/helpers/dbtime"
)

/* =========================
   Occurrence instance
========================= */

// DateKey is the canonical string form of an occurrence date, used to key
// exceptions and status updates per series.
const DateKeyLayout = "2006-01-02"

// Instance is one concrete scheduled happening of a series. Instances are
// materialized on demand for a query window and never persisted wholesale;
// only exceptions and status updates are stored, keyed by
// (series id, original date).
type Instance struct {
	ID       uuid.UUID `json:"id"`
	SeriesID uuid.UUID `json:"series_id"`

	// OriginalDate is the generator's date and stays fixed under reschedules;
	// it is the persistence key together with SeriesID.
	OriginalDate time.Time `json:"original_date"`

	Date            time.Time  `json:"date"`
	StartTime       dbtime.Tod `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`

	Title     string `json:"title"`
	Deity     string `json:"deity,omitempty"`
	Location  string `json:"location"`
	Officiant string `json:"officiant"`

	Status OccurrenceStatus `json:"status"`

	// Set by the exception overlay.
	RescheduledFrom *time.Time `json:"rescheduled_from,omitempty"`
	ExceptionReason string     `json:"exception_reason,omitempty"`
}

// InstanceID derives the deterministic occurrence id from series + date, so
// regeneration is idempotent.
func InstanceID(seriesID uuid.UUID, date time.Time) uuid.UUID {
	return uuid.NewSHA1(seriesID, []byte(date.Format(DateKeyLayout)))
}

func DateKey(date time.Time) string {
	return date.Format(DateKeyLayout)
}

/* =========================
   Exception overlay (pure)
========================= */

type ExceptionKind string

const (
	ExceptionCancel          ExceptionKind = "cancel"
	ExceptionReschedule      ExceptionKind = "reschedule"
	ExceptionChangeOfficiant ExceptionKind = "change_officiant"
	ExceptionChangeLocation  ExceptionKind = "change_location"
)

// ExceptionOverride is the in-memory form of a persisted exception row.
// Exactly the fields required by Kind are populated.
type ExceptionOverride struct {
	Kind         ExceptionKind
	Reason       string
	NewDate      *time.Time
	NewStartTime *dbtime.Tod
	NewOfficiant *string
	NewLocation  *string
}

// ApplyExceptions overlays per-date overrides on generated instances.
// Instances without a matching exception pass through untouched. Cancelled
// occurrences stay visible so history and notifications remain auditable.
// At most one exception applies per original date; enforcing that is the
// persistence layer's upsert, not this function.
func ApplyExceptions(instances []Instance, byDate map[string]ExceptionOverride) []Instance {
	if len(byDate) == 0 {
		return instances
	}

	out := make([]Instance, len(instances))
	for i, inst := range instances {
		ex, ok := byDate[DateKey(inst.OriginalDate)]
		if !ok {
			out[i] = inst
			continue
		}

		switch ex.Kind {
		case ExceptionCancel:
			inst.Status = StatusCancelled
			inst.ExceptionReason = ex.Reason

		case ExceptionReschedule:
			if ex.NewDate != nil {
				orig := inst.OriginalDate
				inst.RescheduledFrom = &orig
				inst.Date = dateOnly(*ex.NewDate)
			}
			if ex.NewStartTime != nil {
				inst.StartTime = *ex.NewStartTime
			}
			inst.ExceptionReason = ex.Reason

		case ExceptionChangeOfficiant:
			if ex.NewOfficiant != nil {
				inst.Officiant = *ex.NewOfficiant
			}
			inst.ExceptionReason = ex.Reason

		case ExceptionChangeLocation:
			if ex.NewLocation != nil {
				inst.Location = *ex.NewLocation
			}
			inst.ExceptionReason = ex.Reason
		}

		out[i] = inst
	}
	return out
}
