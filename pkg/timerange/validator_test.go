package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"valid range", "09:00", "18:00", nil},
		{"one minute", "09:00", "09:01", nil},
		{"equal bounds", "09:00", "09:00", ErrInvalidRange},
		{"inverted", "18:00", "09:00", ErrInvalidRange},
		{"bad start format", "9:00", "18:00", ErrInvalidRange},
		{"bad end format", "09:00", "24:00", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(types.TimeString(tt.start), types.TimeString(tt.end))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNested(t *testing.T) {
	tests := []struct {
		name                 string
		outerStart, outerEnd string
		innerStart, innerEnd string
		wantErr              error
	}{
		{"break inside work day", "09:00", "18:00", "13:00", "14:00", nil},
		{"break equals work day", "09:00", "18:00", "09:00", "18:00", nil},
		{"break starts before opening", "09:00", "18:00", "08:00", "10:00", ErrNestedRangeOutOfBounds},
		{"break ends after closing", "09:00", "18:00", "17:00", "19:00", ErrNestedRangeOutOfBounds},
		{"inverted inner", "09:00", "18:00", "14:00", "13:00", ErrInvalidRange},
		{"inverted outer", "18:00", "09:00", "13:00", "14:00", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNested(
				types.TimeString(tt.outerStart), types.TimeString(tt.outerEnd),
				types.TimeString(tt.innerStart), types.TimeString(tt.innerEnd),
			)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInstants(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateInstants(now, now.Add(24*time.Hour)))
	assert.ErrorIs(t, ValidateInstants(now, now), ErrInvalidRange)
	assert.ErrorIs(t, ValidateInstants(now.Add(time.Hour), now), ErrInvalidRange)
	assert.ErrorIs(t, ValidateInstants(time.Time{}, now), ErrInvalidRange)
	assert.ErrorIs(t, ValidateInstants(now, time.Time{}), ErrInvalidRange)
}
