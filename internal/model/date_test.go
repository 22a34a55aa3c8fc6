package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	require.Equal(t, "2024-01-10", d.String())
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"10/01/2024", "2024-1-10", "2024-01-10T00:00:00Z", "", "yesterday"} {
		_, err := ParseDate(s)
		require.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.December, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-12-31"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.True(t, parsed.Equal(d))
}

func TestDateUnmarshalRejectsNonString(t *testing.T) {
	var d Date
	require.ErrorIs(t, json.Unmarshal([]byte(`20240110`), &d), ErrInvalidDate)
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	d := NewDate(2024, time.January, 30).AddDays(3)
	require.Equal(t, "2024-02-02", d.String())

	back := d.AddDays(-3)
	require.Equal(t, "2024-01-30", back.String())
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC)))
	require.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-03-06"))
	require.Equal(t, "2024-03-06", d.String())

	require.Error(t, d.Scan(42))
}
