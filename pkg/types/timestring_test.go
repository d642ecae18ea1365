package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid midday", input: "12:00", want: "12:00"},
		{name: "valid half hour", input: "21:30", want: "21:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "missing minutes", input: "12", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "12:61", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringTruncatesSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 14, 30, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "add half hour", start: "12:00", add: 30, want: "12:30"},
		{name: "add hour across boundary", start: "21:30", add: 30, want: "22:00"},
		{name: "add zero", start: "12:00", add: 0, want: "12:00"},
		{name: "negative shift", start: "12:30", add: -30, want: "12:00"},
		{name: "past midnight", start: "23:30", add: 60, wantErr: true},
		{name: "before day start", start: "00:15", add: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparisonIsChronological(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("12:00"))
	assert.True(t, TimeString("22:00").IsAfter("21:30"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("13:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
