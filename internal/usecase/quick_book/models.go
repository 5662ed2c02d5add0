package quick_book

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на быструю запись по ключу слота
type Request struct {
	ClientID  int64        // ID клиента
	ServiceID int64        // ID услуги
	TrainerID *int64       // ID тренера (опционально)
	Date      time.Time    // Дата занятия (без времени)
	Slot      string       // Ключ слота в формате "HH:MM-HH:MM" (например, "10:00-11:30")
	Room      *domain.Room // Зал (опционально, по умолчанию hall1)
	Notes     *string      // Дополнительные заметки (опционально)
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
	Slot            string           // Ключ слота
	Status          string           // Статус записи

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	TrainerName  *string // Имя тренера
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
}
