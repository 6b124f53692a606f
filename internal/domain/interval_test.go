package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

func iv(start, end string) Interval {
	return Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"identical", iv("10:00", "11:00"), iv("10:00", "11:00"), true},
		{"partial overlap", iv("10:00", "11:00"), iv("10:30", "11:30"), true},
		{"contained", iv("10:00", "12:00"), iv("10:30", "11:00"), true},
		{"touching end to start", iv("10:00", "11:00"), iv("11:00", "12:00"), false},
		{"touching start to end", iv("11:00", "12:00"), iv("10:00", "11:00"), false},
		{"disjoint", iv("09:00", "10:00"), iv("14:00", "15:00"), false},
		{"one minute overlap", iv("10:00", "11:00"), iv("10:59", "12:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	assert.True(t, iv("09:00", "18:00").Contains(iv("10:00", "11:00")))
	assert.True(t, iv("09:00", "18:00").Contains(iv("09:00", "18:00")))
	assert.False(t, iv("09:00", "18:00").Contains(iv("08:00", "10:00")))
	assert.False(t, iv("09:00", "18:00").Contains(iv("17:00", "19:00")))
}

func TestInterval_Subtract(t *testing.T) {
	tests := []struct {
		name string
		from Interval
		sub  Interval
		want []Interval
	}{
		{
			name: "no overlap leaves interval intact",
			from: iv("09:00", "12:00"),
			sub:  iv("13:00", "14:00"),
			want: []Interval{iv("09:00", "12:00")},
		},
		{
			name: "cut in the middle splits in two",
			from: iv("09:00", "18:00"),
			sub:  iv("13:00", "14:00"),
			want: []Interval{iv("09:00", "13:00"), iv("14:00", "18:00")},
		},
		{
			name: "cut at the start trims left",
			from: iv("09:00", "18:00"),
			sub:  iv("09:00", "10:00"),
			want: []Interval{iv("10:00", "18:00")},
		},
		{
			name: "cut at the end trims right",
			from: iv("09:00", "18:00"),
			sub:  iv("17:00", "18:00"),
			want: []Interval{iv("09:00", "17:00")},
		},
		{
			name: "full cover removes interval",
			from: iv("10:00", "11:00"),
			sub:  iv("09:00", "12:00"),
			want: []Interval{},
		},
		{
			name: "overhanging cut trims to remainder",
			from: iv("09:00", "12:00"),
			sub:  iv("11:00", "14:00"),
			want: []Interval{iv("09:00", "11:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Subtract(tt.sub)
			assert.Equal(t, tt.want, got)
		})
	}
}
