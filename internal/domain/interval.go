package domain

import "github.com/lumiplatform/LUMI-SchedulingService/pkg/types"

// Interval полуоткрытый временной интервал [Start, End) внутри одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps returns true if the two half-open intervals actually overlap.
// Touching boundaries (one ends exactly where the other starts) do not count.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains returns true if other lies fully within i
func (i Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}

// Subtract вырезает sub из интервала и возвращает оставшиеся части
// Возможны 0, 1 или 2 результата (вырез в середине делит интервал надвое)
func (i Interval) Subtract(sub Interval) []Interval {
	if !i.Overlaps(sub) {
		return []Interval{i}
	}

	result := make([]Interval, 0, 2)
	if i.Start.IsBefore(sub.Start) {
		result = append(result, Interval{Start: i.Start, End: sub.Start})
	}
	if sub.End.IsBefore(i.End) {
		result = append(result, Interval{Start: sub.End, End: i.End})
	}
	return result
}
