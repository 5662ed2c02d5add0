package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     string  `json:"description,omitempty"`
	HasSubscription bool    `json:"hasSubscription"` // У клиента есть действующий абонемент
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// TrainerResponse ответ с данными тренера
type TrainerResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experienceYears"`
}

// TrainerListResponse ответ со списком тренеров
type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service, hasSubscription bool) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
		HasSubscription: hasSubscription,
	}
}

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:              t.ID,
		FullName:        t.FullName,
		Specialization:  t.Specialization,
		ExperienceYears: t.ExperienceYears,
	}
}
