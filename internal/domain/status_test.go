package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("closed").IsValid())
}

func TestStatus_IsOpen(t *testing.T) {
	assert.True(t, StatusNew.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusDone.IsOpen())
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{StatusNew, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusNew},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "New", StatusNew.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Done", StatusDone.Display())
	assert.Equal(t, "weird", Status("weird").Display())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"new", StatusNew},
		{"NEW", StatusNew},
		{"in_progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"done", StatusDone},
		{"DONE", StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("In_Progress")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
