package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение слотов зала на дату
type Request struct {
	Room domain.Room // Зал
	Date time.Time   // Дата (без времени)
}

// Slot слот дня с признаком доступности
type Slot struct {
	Slot      string           // Ключ слота в формате "HH:MM-HH:MM"
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Available bool             // Свободен ли слот для записи
}

// Response модель ответа со слотами дня
type Response struct {
	Room  string    // Зал
	Date  time.Time // Дата
	Slots []Slot    // Слоты в хронологическом порядке
}
