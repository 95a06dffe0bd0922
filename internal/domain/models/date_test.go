package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsCommonLayouts(t *testing.T) {
	want := NewDate(2024, time.March, 9)
	inputs := []string{
		"2024-03-09",
		"2024-3-9",
		"03/09/2024",
		"3/9/2024",
		" 2024-03-09 ",
		"2024-03-09T15:04:05Z",
		"2024-03-09 15:04:05",
	}
	for _, in := range inputs {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "13/45/2024"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestCoerceDateNeverFails(t *testing.T) {
	want := NewDate(2023, time.July, 4)

	assert.Equal(t, want, CoerceDate("2023-07-04"))
	assert.Equal(t, want, CoerceDate(time.Date(2023, 7, 4, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, want, CoerceDate(want))

	assert.True(t, CoerceDate(nil).IsZero())
	assert.True(t, CoerceDate("whenever").IsZero())
	assert.True(t, CoerceDate(42.0).IsZero())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.January, 2)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDateJSONUnknown(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var back Date
	require.NoError(t, json.Unmarshal([]byte("null"), &back))
	assert.True(t, back.IsZero())
}
