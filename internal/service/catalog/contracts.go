package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	FindActiveServices(ctx context.Context) ([]*domain.Service, error)
	FindActiveTrainers(ctx context.Context) ([]*domain.Trainer, error)
	FindActiveSubscriptions(ctx context.Context, clientID int64, onDate time.Time) ([]*domain.Subscription, error)
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
