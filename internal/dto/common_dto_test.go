package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAcceptsDateAndRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())

	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T10:30:00Z"`), &d))
	assert.Equal(t, 15, d.Day())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2026"`), &d))
}

func TestDateNullHandling(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
	assert.Nil(t, d.TimePtr())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDateMarshalsDateOnly(t *testing.T) {
	d := NewDate(time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(out))
}

func TestDateUnmarshalParam(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalParam("2026-01-02"))
	assert.Equal(t, 2, d.Day())

	require.NoError(t, d.UnmarshalParam(""))
	assert.True(t, d.IsZero())

	assert.Error(t, d.UnmarshalParam("not-a-date"))
}
