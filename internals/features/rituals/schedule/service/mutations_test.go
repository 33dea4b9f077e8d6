// file: internals/features/rituals/schedule/service/mutations_test.go
package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"

	schedModel "templeku_backend/internals/features/rituals/schedule/model"
	seriesModel "templeku_backend/internals/features/rituals/series/model"
)

// dryRunDB builds statements without a database so tests can inspect the SQL
// the lookup scopes generate.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// A series id from another temple must behave as not found, so every
// mutation-side lookup has to carry the temple key next to the series key.
func TestLookupScopesKeyedByTemple(t *testing.T) {
	db := dryRunDB(t)
	templeID := uuid.New()
	seriesID := uuid.New()

	var series []seriesModel.RitualSeriesModel
	q := db.Scopes(seriesKeyScope(templeID, seriesID)).Find(&series).Statement.SQL.String()
	if !strings.Contains(q, "ritual_series_id = ?") || !strings.Contains(q, "ritual_series_temple_id = ?") {
		t.Errorf("series lookup missing temple key: %s", q)
	}

	var exceptions []schedModel.RitualExceptionModel
	q = db.Scopes(exceptionKeyScope(templeID, seriesID)).Find(&exceptions).Statement.SQL.String()
	if !strings.Contains(q, "ritual_exception_series_id = ?") || !strings.Contains(q, "ritual_exception_temple_id = ?") {
		t.Errorf("exception lookup missing temple key: %s", q)
	}

	var updates []schedModel.RitualStatusUpdateModel
	q = db.Scopes(statusKeyScope(templeID, seriesID)).Find(&updates).Statement.SQL.String()
	if !strings.Contains(q, "ritual_status_update_series_id = ?") || !strings.Contains(q, "ritual_status_update_temple_id = ?") {
		t.Errorf("status lookup missing temple key: %s", q)
	}
}

var errStorageDown = errors.New("storage down")

type failingConnector struct{ err error }

func (f failingConnector) Connect(context.Context) (driver.Conn, error) { return nil, f.err }
func (f failingConnector) Driver() driver.Driver                        { return nil }

// brokenDB answers every query with a connection failure.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn := sql.OpenDB(failingConnector{err: errStorageDown})
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db
}

func TestCurrentStatusSurfacesStorageErrors(t *testing.T) {
	s := &ScheduleService{DB: brokenDB(t)}

	st, err := s.currentStatus(context.Background(), uuid.New(), uuid.New(), d(2024, 1, 9))
	if err == nil {
		t.Fatalf("want the storage error, got status %q", st)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("storage failure must not read as missing rows: %v", err)
	}
}

func TestUpdateStatusSurfacesStorageErrors(t *testing.T) {
	s := &ScheduleService{DB: brokenDB(t)}

	_, err := s.UpdateStatus(context.Background(), uuid.New(), uuid.New(), d(2024, 1, 9),
		StatusChange{NewStatus: StatusOnTime}, nil)
	if err == nil {
		t.Fatal("want an error when storage is unreachable")
	}
	var transErr *InvalidTransitionError
	if errors.As(err, &transErr) {
		t.Fatalf("transition was validated against a guessed state: %v", err)
	}
}

func TestExceptionNoticeAudiences(t *testing.T) {
	templeID := uuid.New()
	seriesID := uuid.New()
	row := &schedModel.RitualExceptionModel{
		RitualExceptionTempleID: templeID,
		RitualExceptionSeriesID: seriesID,
	}

	if got := exceptionNoticeRecipients(row); len(got) != 0 {
		t.Fatalf("no audience flags set, want no recipients, got %v", got)
	}

	row.RitualExceptionNotifySubscribers = true
	got := exceptionNoticeRecipients(row)
	if len(got) != 1 || got[0] != "scope:series-subscribers:"+seriesID.String() {
		t.Fatalf("unexpected subscriber audience: %v", got)
	}

	row.RitualExceptionBroadcastToCommunity = true
	got = exceptionNoticeRecipients(row)
	if len(got) != 2 || got[1] != "scope:temple-community:"+templeID.String() {
		t.Fatalf("unexpected community audience: %v", got)
	}
}
