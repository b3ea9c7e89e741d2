package backoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с backoffice (учетные записи столовой)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента backoffice
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUsuario получает пользователя по ID
func (c *Client) GetUsuario(ctx context.Context, userID int64) (*Usuario, error) {
	url := fmt.Sprintf("%s/internal/usuarios/%d", c.baseURL, userID)

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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrUsuarioNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var usuario Usuario
	if err := json.NewDecoder(resp.Body).Decode(&usuario); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &usuario, nil
}

// GetUsuarioWithGracefulDegradation получает пользователя с graceful degradation.
// При недоступности backoffice возвращает ErrServiceDegraded: вызывающий код
// продолжает работу без данных пользователя, вместо того чтобы падать
func (c *Client) GetUsuarioWithGracefulDegradation(ctx context.Context, userID int64) (*Usuario, error) {
	usuario, err := c.GetUsuario(ctx, userID)
	if err != nil {
		// Бизнес-ошибку (пользователь не найден) пробрасываем дальше
		if err == ErrUsuarioNotFound {
			c.log.Info("No usuario found in backoffice for user_id=%d", userID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, ошибки парсинга)
		// применяем graceful degradation с повышенным уровнем логирования
		c.log.Error("Backoffice unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	return usuario, nil
}
