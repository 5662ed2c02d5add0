package quick_book

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByRoomAndDate(ctx context.Context, room domain.Room, date time.Time, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetClientProfileWithGracefulDegradation(ctx context.Context, clientID int64) (*profileservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
