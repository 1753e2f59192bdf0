package service

import (
	"errors"

	"github.com/Totarae/URLShortenerGateway/internal/apperrors"
	"github.com/Totarae/URLShortenerGateway/internal/model"
	"github.com/Totarae/URLShortenerGateway/internal/validation"
)

var errNoURLInBody = errors.New("no http(s) url in backend response")

// Normalizer превращает ответ бэкенда в короткую ссылку или нормализованную ошибку.
type Normalizer struct {
	extractor Extractor
}

func NewNormalizer(extractor Extractor) *Normalizer {
	return &Normalizer{extractor: extractor}
}

// Normalize возвращает короткую ссылку, повторно проверенную validation.URL,
// либо *apperrors.Error класса BackendRejected или MalformedBackendResponse.
func (n *Normalizer) Normalize(outcome model.BackendOutcome) (string, error) {
	if !outcome.Success() {
		return "", apperrors.BackendRejected(outcome.StatusCode, outcome.Body)
	}

	candidate, ok := n.extractor.Extract(outcome.Body)
	if !ok {
		return "", apperrors.MalformedBackendResponse(errNoURLInBody)
	}
	shortURL, err := validation.URL(candidate)
	if err != nil {
		return "", apperrors.MalformedBackendResponse(err)
	}
	return shortURL.String(), nil
}
