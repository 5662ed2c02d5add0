package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со справочниками: услуги, тренеры, абонементы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"duration_minutes",
		"description",
		"is_active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var description sql.NullString
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
		&description,
		&service.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.Description = description.String
	service.CreatedAt = createdAt.Time

	return &service, nil
}

// FindActiveServices получает список активных услуг
// Сортировка по имени - стабильный базовый порядок, поверх которого
// сервисный слой поднимает услуги с активным абонементом
func (r *Repository) FindActiveServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"duration_minutes",
		"description",
		"is_active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		var description sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&description,
			&service.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: FindActiveServices - scan row: %v", ErrScanRow, err)
		}

		service.Description = description.String
		service.CreatedAt = createdAt.Time

		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetTrainer получает тренера по ID
func (r *Repository) GetTrainer(ctx context.Context, id int64) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"specialization",
		"experience_years",
		"phone",
		"is_active",
		"created_at",
	).
		From("trainers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainer - build select query: %v", ErrBuildQuery, err)
	}

	var trainer domain.Trainer
	var phone sql.NullString
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trainer.ID,
		&trainer.FullName,
		&trainer.Specialization,
		&trainer.ExperienceYears,
		&phone,
		&trainer.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainer - scan trainer: %v", ErrScanRow, err)
	}

	trainer.Phone = phone.String
	trainer.CreatedAt = createdAt.Time

	return &trainer, nil
}

// FindActiveTrainers получает список активных тренеров
func (r *Repository) FindActiveTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"specialization",
		"experience_years",
		"phone",
		"is_active",
		"created_at",
	).
		From("trainers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveTrainers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveTrainers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	trainers := make([]*domain.Trainer, 0)
	for rows.Next() {
		var trainer domain.Trainer
		var phone sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&trainer.ID,
			&trainer.FullName,
			&trainer.Specialization,
			&trainer.ExperienceYears,
			&phone,
			&trainer.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: FindActiveTrainers - scan row: %v", ErrScanRow, err)
		}

		trainer.Phone = phone.String
		trainer.CreatedAt = createdAt.Time

		trainers = append(trainers, &trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveTrainers - rows error: %v", ErrScanRow, err)
	}

	return trainers, nil
}

// FindActiveSubscriptions получает действующие на указанную дату абонементы клиента
// Дата сравнивается на уровне дня: границы периода включительны
func (r *Repository) FindActiveSubscriptions(ctx context.Context, clientID int64, onDate time.Time) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"service_id",
		"start_date",
		"end_date",
		"price_paid",
		"status",
		"created_at",
	).
		From("subscriptions").
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"status": domain.SubscriptionActive}).
		Where(squirrel.LtOrEq{"start_date": onDate}).
		Where(squirrel.GtOrEq{"end_date": onDate}).
		OrderBy("end_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSubscriptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSubscriptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	subscriptions := make([]*domain.Subscription, 0)
	for rows.Next() {
		var subscription domain.Subscription
		var createdAt sql.NullTime

		err := rows.Scan(
			&subscription.ID,
			&subscription.ClientID,
			&subscription.ServiceID,
			&subscription.StartDate,
			&subscription.EndDate,
			&subscription.PricePaid,
			&subscription.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: FindActiveSubscriptions - scan row: %v", ErrScanRow, err)
		}

		subscription.CreatedAt = createdAt.Time

		subscriptions = append(subscriptions, &subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveSubscriptions - rows error: %v", ErrScanRow, err)
	}

	return subscriptions, nil
}
