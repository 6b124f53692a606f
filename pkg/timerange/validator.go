// Package timerange единая валидация временных диапазонов
//
// Одно и то же правило "начало строго раньше конца" нужно пяти несвязанным
// фичам: расписаниям мастеров, отпускам, часам работы салона, окнам действия
// купонов и кампаний. Все они обязаны отклонять перевернутый диапазон одной
// и той же ошибкой, поэтому сравнение живёт здесь, а не в каждой фиче.
package timerange

import (
	"errors"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

var (
	// ErrInvalidRange возвращается для любого перевернутого или пустого диапазона
	// Все потребители валидатора отдают наружу именно эту ошибку
	ErrInvalidRange = errors.New("timerange: start must be strictly before end")

	// ErrNestedRangeOutOfBounds возвращается, когда вложенное окно выходит за внешнее
	ErrNestedRangeOutOfBounds = errors.New("timerange: inner range must be contained in outer range")
)

// Validate проверяет, что start строго раньше end
// Равные значения недопустимы: диапазон нулевой длины не является диапазоном
func Validate(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("%w: got [%s, %s)", ErrInvalidRange, start, end)
	}
	return nil
}

// ValidateNested проверяет вложенное окно (например, перерыв внутри рабочего дня)
// Требование: outerStart <= innerStart < innerEnd <= outerEnd
func ValidateNested(outerStart, outerEnd, innerStart, innerEnd types.TimeString) error {
	if err := Validate(outerStart, outerEnd); err != nil {
		return err
	}
	if err := Validate(innerStart, innerEnd); err != nil {
		return err
	}

	if innerStart.IsBefore(outerStart) || innerEnd.IsAfter(outerEnd) {
		return fmt.Errorf("%w: [%s, %s) outside [%s, %s)",
			ErrNestedRangeOutOfBounds, innerStart, innerEnd, outerStart, outerEnd)
	}
	return nil
}

// ValidateInstants проверяет диапазон из абсолютных моментов времени
// Используется для окон действия купонов и кампаний
func ValidateInstants(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: got [%s, %s)",
			ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}
