package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusbook/CB-ReservationService/pkg/types"
)

func TestReservation_OverlapsWith(t *testing.T) {
	res := &Reservation{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical interval", "10:00", "12:00", true},
		{"contained inside", "10:30", "11:30", true},
		{"covers entirely", "09:00", "13:00", true},
		{"overlaps start", "09:00", "10:30", true},
		{"overlaps end", "11:30", "13:00", true},
		{"touches at start boundary", "08:00", "10:00", false},
		{"touches at end boundary", "12:00", "14:00", false},
		{"fully before", "07:00", "09:00", false},
		{"fully after", "13:00", "15:00", false},
		{"one minute overlap at end", "11:59", "13:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := res.OverlapsWith(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusConfirmed, StatusRejected, false},
		{StatusConfirmed, StatusPending, false},
		{StatusRejected, StatusConfirmed, false},
		{StatusRejected, StatusCancelled, false},
		{StatusRejected, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusRejected, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			res := &Reservation{Status: tt.from}
			assert.Equal(t, tt.want, res.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_Blocks(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).Blocks())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).Blocks())
	assert.False(t, (&Reservation{Status: StatusRejected}).Blocks())
	assert.False(t, (&Reservation{Status: StatusCancelled}).Blocks())
}

func TestReservation_IsTerminal(t *testing.T) {
	assert.False(t, (&Reservation{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Reservation{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Reservation{Status: StatusRejected}).IsTerminal())
	assert.True(t, (&Reservation{Status: StatusCancelled}).IsTerminal())
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ReservationStatus("approved").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}
