package domain

import "time"

// Service represents a bookable service of the sport complex
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     string
	IsActive        bool
	CreatedAt       time.Time
}

// Trainer represents a trainer of the sport complex
type Trainer struct {
	ID              int64
	FullName        string
	Specialization  string
	ExperienceYears int
	Phone           string
	IsActive        bool
	CreatedAt       time.Time
}

// Client клиент комплекса, владелец записей и абонементов
// Ядро планирования получает клиента уже разрешённым (привязка
// аккаунта к профилю - забота внешнего сервиса профилей)
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	CreatedAt time.Time
}

// FullName возвращает полное имя клиента
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// SubscriptionStatus статус абонемента
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription абонемент клиента на услугу
// Планировщик читает абонементы только для сортировки услуг,
// на допустимость записи они не влияют
type Subscription struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StartDate time.Time
	EndDate   time.Time
	PricePaid float64
	Status    SubscriptionStatus
	CreatedAt time.Time
}

// IsActiveOn проверяет, действует ли абонемент на указанную дату
func (s *Subscription) IsActiveOn(date time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(s.StartDate.Year(), s.StartDate.Month(), s.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(s.EndDate.Year(), s.EndDate.Month(), s.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
