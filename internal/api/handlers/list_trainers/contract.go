package list_trainers

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/catalog/models"
)

type CatalogService interface {
	ListTrainers(ctx context.Context) (*models.TrainerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
