package get_staff_availability

import (
	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// IntervalResponse один доступный интервал мастера
type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse ответ с доступными интервалами мастера на дату
// Пустой список означает, что мастер в этот день не принимает
type AvailabilityResponse struct {
	StaffID   int64              `json:"staffId"`
	Date      string             `json:"date"`
	Intervals []IntervalResponse `json:"intervals"`
}

// fromDomainIntervals конвертирует интервалы в DTO
func fromDomainIntervals(intervals []domain.Interval) []IntervalResponse {
	result := make([]IntervalResponse, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, IntervalResponse{
			StartTime: interval.Start.String(),
			EndTime:   interval.End.String(),
		})
	}
	return result
}
