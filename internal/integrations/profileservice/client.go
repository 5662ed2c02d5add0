package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ProfileService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClientProfile получает профиль клиента по ID
func (c *Client) GetClientProfile(ctx context.Context, clientID int64) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid client ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetClientProfileWithGracefulDegradation получает профиль клиента с graceful degradation
// При недоступности ProfileService возвращает ErrServiceDegraded: запись
// продолжается без обогащения контактными данными
func (c *Client) GetClientProfileWithGracefulDegradation(ctx context.Context, clientID int64) (*Profile, error) {
	c.log.Info("Fetching profile for client_id=%d", clientID)

	profile, err := c.GetClientProfile(ctx, clientID)
	if err != nil {
		// Критичную бизнес-ошибку (профиль не найден) пробрасываем дальше
		if err == ErrClientNotFound {
			c.log.Info("No profile found for client_id=%d", clientID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("ProfileService unavailable, applying graceful degradation for client_id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: client_id=%d, error=%v", ErrServiceDegraded, clientID, err)
	}

	c.log.Info("Successfully fetched profile for client_id=%d", clientID)
	return profile, nil
}
