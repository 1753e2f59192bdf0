// Package validation проверяет URL, которые проходят через шлюз в обе стороны.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Totarae/URLShortenerGateway/internal/apperrors"
)

// MaxURLLength - предельная длина URL в байтах.
const MaxURLLength = 2048

var (
	errEmpty     = errors.New("url is empty")
	errTooLong   = fmt.Errorf("url is longer than %d bytes", MaxURLLength)
	errRelative  = errors.New("url is not absolute")
	errScheme    = errors.New("url scheme must be http or https")
	errEmptyHost = errors.New("url has no host")
)

// ValidatedURL - URL, прошедший проверку URL. Нулевое значение невалидно.
type ValidatedURL struct {
	raw string
}

// String возвращает URL без окружающих пробелов.
func (v ValidatedURL) String() string { return v.raw }

// IsZero сообщает, что значение не было получено через URL.
func (v ValidatedURL) IsZero() bool { return v.raw == "" }

// URL проверяет, что candidate - абсолютный URL со схемой http или https.
// Ошибка всегда имеет класс apperrors.KindInvalidURL.
func URL(candidate string) (ValidatedURL, error) {
	s := strings.TrimSpace(candidate)
	if s == "" {
		return ValidatedURL{}, apperrors.InvalidURL(errEmpty)
	}
	if len(s) > MaxURLLength {
		return ValidatedURL{}, apperrors.InvalidURL(errTooLong)
	}

	u, err := url.Parse(s)
	if err != nil {
		return ValidatedURL{}, apperrors.InvalidURL(err)
	}
	if !u.IsAbs() {
		return ValidatedURL{}, apperrors.InvalidURL(errRelative)
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return ValidatedURL{}, apperrors.InvalidURL(errScheme)
	}
	if u.Hostname() == "" {
		return ValidatedURL{}, apperrors.InvalidURL(errEmptyHost)
	}

	return ValidatedURL{raw: s}, nil
}
