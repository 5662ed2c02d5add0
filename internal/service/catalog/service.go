package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/service/catalog/models"
)

// Service сервис справочников: услуги и тренеры
type Service struct {
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListServices получает активные услуги
// Если указан клиент, услуги с его действующим абонементом поднимаются
// в начало списка; внутри групп сохраняется алфавитный порядок
func (s *Service) ListServices(ctx context.Context, clientID *int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching active services, client=%v", clientID)

	services, err := s.catalogRepo.FindActiveServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	subscribed := make(map[int64]bool)
	if clientID != nil {
		now := s.timeProvider.Now()
		subscriptions, err := s.catalogRepo.FindActiveSubscriptions(ctx, *clientID, now)
		if err != nil {
			s.logger.Error("ListServices: failed to get subscriptions for client=%d: %v", *clientID, err)
			return nil, fmt.Errorf("%w: ListServices - failed to get subscriptions: %v", ErrInternal, err)
		}
		for _, sub := range subscriptions {
			subscribed[sub.ServiceID] = true
		}
	}

	items := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		items = append(items, models.FromDomainService(svc, subscribed[svc.ID]))
	}

	// Репозиторий отдаёт услуги по имени; стабильная сортировка
	// сохраняет этот порядок внутри каждой группы
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].HasSubscription && !items[j].HasSubscription
	})

	s.logger.Info("ListServices: successfully fetched %d services", len(items))
	return &models.ServiceListResponse{Services: items}, nil
}

// ListTrainers получает активных тренеров
func (s *Service) ListTrainers(ctx context.Context) (*models.TrainerListResponse, error) {
	s.logger.Info("ListTrainers: fetching active trainers")

	trainers, err := s.catalogRepo.FindActiveTrainers(ctx)
	if err != nil {
		s.logger.Error("ListTrainers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTrainers - repository error: %v", ErrInternal, err)
	}

	items := make([]models.TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		items = append(items, models.FromDomainTrainer(t))
	}

	s.logger.Info("ListTrainers: successfully fetched %d trainers", len(items))
	return &models.TrainerListResponse{Trainers: items}, nil
}
