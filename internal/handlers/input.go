package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/Totarae/URLShortenerGateway/internal/model"
)

// maxBodyBytes ограничивает тело входящего запроса.
const maxBodyBytes = 1 << 20

var errFieldMissing = errors.New(`field "url" is absent or empty`)

// inboundBody - тело запроса на сокращение: форма или JSON-объект.
type inboundBody interface {
	url() (string, bool)
}

type formBody url.Values

func (f formBody) url() (string, bool) {
	values, ok := f["url"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

type jsonBody model.ShortenRequest

func (j jsonBody) url() (string, bool) {
	return j.URL, j.URL != ""
}

// readInbound выбирает разбор тела по Content-Type.
// Формы разбираются как формы, всё остальное - как JSON-объект.
func readInbound(w http.ResponseWriter, r *http.Request) (inboundBody, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return formBody(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, err
		}
		return formBody(r.PostForm), nil
	default:
		var req model.ShortenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return jsonBody(req), nil
	}
}

// extractURL возвращает непустое значение поля url.
func extractURL(body inboundBody) (string, error) {
	raw, ok := body.url()
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errFieldMissing
	}
	return raw, nil
}
