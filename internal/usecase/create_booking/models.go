package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги
	TrainerID *int64           // ID тренера (опционально)
	Date      time.Time        // Дата занятия (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "11:30")
	Room      domain.Room      // Зал
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	ServiceID       int64            // ID услуги
	TrainerID       *int64           // ID тренера
	BookingDate     time.Time        // Дата занятия
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Room            string           // Зал
	Status          string           // Статус записи

	// Денормализованные данные справочников
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	TrainerName  *string // Имя тренера
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
}
