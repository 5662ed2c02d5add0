package get_room_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

type BookingService interface {
	GetRoomSchedule(ctx context.Context, req *models.GetRoomScheduleRequest) (*models.RoomScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
