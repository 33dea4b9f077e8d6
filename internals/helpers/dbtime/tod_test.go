// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tod, err := Parse("06:30")
	require.NoError(t, err)
	assert.Equal(t, "06:30:00", tod.Format("15:04:05"))

	tod, err = Parse("18:45:10")
	require.NoError(t, err)
	assert.Equal(t, "18:45:10", tod.Format("15:04:05"))

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestScanAndValue(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("07:15:00"))

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:15:00", v)

	require.NoError(t, tod.Scan([]byte("08:00")))
	v, err = tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("06:00")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.JSONEq(t, `"06:00:00"`, string(b))

	var back Tod
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod.Format("15:04:05"), back.Format("15:04:05"))
}

func TestOn(t *testing.T) {
	tod, err := Parse("06:30")
	require.NoError(t, err)

	day := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	at := tod.On(day)

	assert.Equal(t, time.Date(2024, 1, 9, 6, 30, 0, 0, time.UTC), at)
}
