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
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing padding", input: "8:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "zero is identity", start: "10:00", minutes: 0, want: "10:00"},
		{name: "within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "crosses hour", start: "10:45", minutes: 30, want: "11:15"},
		{name: "ends exactly at midnight rejected", start: "23:00", minutes: 60, wantErr: true},
		{name: "crosses midnight rejected", start: "23:30", minutes: 45, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrTimeOutOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesSinceMidnight())
	assert.Equal(t, 510, TimeString("08:30").MinutesSinceMidnight())
	assert.Equal(t, 1439, TimeString("23:59").MinutesSinceMidnight())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     TimeString
		want                           bool
	}{
		{name: "self overlap", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial overlap", aStart: "10:30", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "containment", aStart: "10:00", aEnd: "12:00", bStart: "10:30", bEnd: "11:00", want: true},
		{name: "touching end to start", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "touching start to end", aStart: "11:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "disjoint", aStart: "08:00", aEnd: "09:00", bStart: "10:00", bEnd: "11:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNewTimeStringFromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestScanTrimsSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)
}
