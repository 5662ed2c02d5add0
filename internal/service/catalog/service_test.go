package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type stubCatalogRepo struct {
	services         []*domain.Service
	servicesErr      error
	trainers         []*domain.Trainer
	trainersErr      error
	subscriptions    []*domain.Subscription
	subscriptionsErr error
	lastClientID     int64
	lastOnDate       time.Time
}

func (s *stubCatalogRepo) FindActiveServices(_ context.Context) ([]*domain.Service, error) {
	return s.services, s.servicesErr
}

func (s *stubCatalogRepo) FindActiveTrainers(_ context.Context) ([]*domain.Trainer, error) {
	return s.trainers, s.trainersErr
}

func (s *stubCatalogRepo) FindActiveSubscriptions(_ context.Context, clientID int64, onDate time.Time) ([]*domain.Subscription, error) {
	s.lastClientID = clientID
	s.lastOnDate = onDate
	return s.subscriptions, s.subscriptionsErr
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo *stubCatalogRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedClock{now: testNow}
	return svc
}

// Репозиторий отдаёт услуги в алфавитном порядке
func namedServices() []*domain.Service {
	return []*domain.Service{
		{ID: 1, Name: "Аквааэробика", Price: 900, IsActive: true},
		{ID: 2, Name: "Бокс", Price: 1200, IsActive: true},
		{ID: 3, Name: "Йога", Price: 1500, IsActive: true},
		{ID: 4, Name: "Плавание", Price: 800, IsActive: true},
	}
}

func TestListServices_AnonymousKeepsNameOrder(t *testing.T) {
	repo := &stubCatalogRepo{services: namedServices()}
	svc := newTestService(repo)

	resp, err := svc.ListServices(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, resp.Services, 4)
	names := []string{}
	for _, s := range resp.Services {
		names = append(names, s.Name)
		assert.False(t, s.HasSubscription)
	}
	assert.Equal(t, []string{"Аквааэробика", "Бокс", "Йога", "Плавание"}, names)
}

func TestListServices_SubscribedFirstStableWithinGroups(t *testing.T) {
	repo := &stubCatalogRepo{
		services: namedServices(),
		subscriptions: []*domain.Subscription{
			{ID: 1, ClientID: 10, ServiceID: 2},
			{ID: 2, ClientID: 10, ServiceID: 4},
		},
	}
	svc := newTestService(repo)

	clientID := int64(10)
	resp, err := svc.ListServices(context.Background(), &clientID)

	require.NoError(t, err)
	require.Len(t, resp.Services, 4)

	// Услуги с абонементом впереди, внутри групп - алфавитный порядок
	names := []string{}
	for _, s := range resp.Services {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Бокс", "Плавание", "Аквааэробика", "Йога"}, names)
	assert.True(t, resp.Services[0].HasSubscription)
	assert.True(t, resp.Services[1].HasSubscription)
	assert.False(t, resp.Services[2].HasSubscription)
	assert.False(t, resp.Services[3].HasSubscription)

	assert.Equal(t, int64(10), repo.lastClientID)
	assert.Equal(t, testNow, repo.lastOnDate)
}

func TestListServices_SubscriptionFetchFailure(t *testing.T) {
	repo := &stubCatalogRepo{
		services:         namedServices(),
		subscriptionsErr: errors.New("connection reset"),
	}
	svc := newTestService(repo)

	clientID := int64(10)
	_, err := svc.ListServices(context.Background(), &clientID)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestListTrainers(t *testing.T) {
	repo := &stubCatalogRepo{trainers: []*domain.Trainer{
		{ID: 1, FullName: "Анна Петрова", Specialization: "Йога", ExperienceYears: 5},
		{ID: 2, FullName: "Иван Сидоров", Specialization: "Бокс", ExperienceYears: 8},
	}}
	svc := newTestService(repo)

	resp, err := svc.ListTrainers(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Trainers, 2)
	assert.Equal(t, "Анна Петрова", resp.Trainers[0].FullName)
	assert.Equal(t, 8, resp.Trainers[1].ExperienceYears)
}

func TestListTrainers_RepoFailure(t *testing.T) {
	repo := &stubCatalogRepo{trainersErr: errors.New("connection reset")}
	svc := newTestService(repo)

	_, err := svc.ListTrainers(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
