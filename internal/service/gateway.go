package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/apperrors"
	"github.com/Totarae/URLShortenerGateway/internal/model"
	"github.com/Totarae/URLShortenerGateway/internal/validation"
)

//go:generate mockgen -source=gateway.go -destination=mocks/backend_mock.go -package=mocks

// Backend - внешний сервис сокращения ссылок.
type Backend interface {
	Shorten(ctx context.Context, longURL validation.ValidatedURL) (model.BackendOutcome, error)
	Ping(ctx context.Context) error
}

// GatewayService проверяет URL, передаёт его бэкенду и нормализует ответ.
// Состояния между запросами не хранит.
type GatewayService struct {
	Backend    Backend
	Normalizer *Normalizer
	Logger     *zap.Logger
}

func NewGatewayService(backend Backend, extractor Extractor, logger *zap.Logger) *GatewayService {
	return &GatewayService{
		Backend:    backend,
		Normalizer: NewNormalizer(extractor),
		Logger:     logger,
	}
}

// Shorten возвращает короткую ссылку для rawURL.
// Любая ошибка имеет тип *apperrors.Error.
func (s *GatewayService) Shorten(ctx context.Context, rawURL string) (string, error) {
	longURL, err := validation.URL(rawURL)
	if err != nil {
		s.Logger.Info("rejected url", zap.String("url", rawURL), zap.Error(err))
		return "", err
	}

	outcome, err := s.Backend.Shorten(ctx, longURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.Logger.Info("backend call cancelled", zap.String("url", longURL.String()))
		} else {
			s.Logger.Error("backend unreachable", zap.String("url", longURL.String()), zap.Error(err))
		}
		return "", apperrors.BackendUnreachable(err)
	}

	shortURL, err := s.Normalizer.Normalize(outcome)
	if err != nil {
		s.Logger.Warn("backend response rejected",
			zap.Int("status", outcome.StatusCode),
			zap.String("body", outcome.Body),
			zap.Error(err),
		)
		return "", err
	}

	s.Logger.Info("url shortened", zap.String("url", longURL.String()), zap.String("short_url", shortURL))
	return shortURL, nil
}

// Ping проверяет доступность бэкенда.
func (s *GatewayService) Ping(ctx context.Context) error {
	if err := s.Backend.Ping(ctx); err != nil {
		return apperrors.BackendUnreachable(err)
	}
	return nil
}
