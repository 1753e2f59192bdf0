// Package backend - HTTP-клиент внешнего сервиса сокращения ссылок.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/model"
	"github.com/Totarae/URLShortenerGateway/internal/validation"
)

const (
	shortenPath = "/shorten"
	// urlField - имя поля формы, которое ожидает бэкенд.
	urlField = "url"
)

// Client обращается к бэкенду сокращения. Безопасен для конкурентного использования.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New создаёт клиент для бэкенда по адресу baseURL.
// timeout ограничивает каждую попытку, повторов нет.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logger.Sugar())

	c := &Client{http: rc, logger: logger}
	rc.OnAfterResponse(c.logResponse)
	return c
}

// Shorten отправляет POST {baseURL}/shorten с полем url.
// Ошибка возвращается только при сетевом сбое; любой HTTP-ответ - это outcome.
func (c *Client) Shorten(ctx context.Context, longURL validation.ValidatedURL) (model.BackendOutcome, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{urlField: longURL.String()}).
		Post(shortenPath)
	if err != nil {
		return model.BackendOutcome{}, fmt.Errorf("post %s: %w", shortenPath, err)
	}

	return model.BackendOutcome{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}, nil
}

// Ping проверяет, что бэкенд отвечает по HTTP. Статус ответа значения не имеет.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("ping backend: %w", err)
	}
	return nil
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	level := zap.DebugLevel
	if resp.StatusCode() >= http.StatusBadRequest {
		level = zap.WarnLevel
	}
	c.logger.Check(level, "backend response").Write(
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
	)
	return nil
}
