package confirm_booking

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/integrations/directoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Confirm(ctx context.Context, id int64, staffID int64, staffName string) error
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, tenantID, staffID int64) (*domain.Staff, error)
}

// DirectoryClient интерфейс клиента каталога услуг
type DirectoryClient interface {
	GetServiceItem(ctx context.Context, tenantID, serviceItemID int64) (*directoryservice.ServiceItem, error)
}

// ConflictChecker интерфейс проверки пересечений слотов
type ConflictChecker interface {
	HasConflict(ctx context.Context, tenantID, staffID int64, date time.Time, interval domain.Interval, excludeBookingID int64) (bool, error)
}

// StaffAssigner интерфейс автоназначения мастера
type StaffAssigner interface {
	Assign(ctx context.Context, tenantID int64, date time.Time, interval domain.Interval, serviceCategory string) (*domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий переходов статусов
type EventPublisher interface {
	PublishTransition(ctx context.Context, event events.TransitionEvent)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
