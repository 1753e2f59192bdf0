package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/apperrors"
	"github.com/Totarae/URLShortenerGateway/internal/model"
)

// stubShortener запоминает принятый URL и возвращает заданный результат.
type stubShortener struct {
	gotURL   string
	calls    int
	shortURL string
	err      error
	pingErr  error
}

func (s *stubShortener) Shorten(_ context.Context, rawURL string) (string, error) {
	s.calls++
	s.gotURL = rawURL
	return s.shortURL, s.err
}

func (s *stubShortener) Ping(context.Context) error { return s.pingErr }

func newTestHandler(s *stubShortener) *Handler {
	return NewHandler(s, zap.NewNop())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestShorten_AcceptsBodyEncodings(t *testing.T) {
	form := url.Values{"url": {"https://yandex.ru"}}

	var multipartBody bytes.Buffer
	mw := multipart.NewWriter(&multipartBody)
	require.NoError(t, mw.WriteField("url", "https://yandex.ru"))
	require.NoError(t, mw.Close())

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json", "application/json", `{"url":"https://yandex.ru"}`},
		{"json with charset", "application/json; charset=utf-8", `{"url":"https://yandex.ru"}`},
		{"json without content type", "", `{"url":"https://yandex.ru"}`},
		{"form", "application/x-www-form-urlencoded", form.Encode()},
		{"multipart", mw.FormDataContentType(), multipartBody.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubShortener{shortURL: "https://short.ly/abc123"}
			h := newTestHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.Shorten(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"shortUrl":"https://short.ly/abc123"}`, rec.Body.String())
			assert.Equal(t, "https://yandex.ru", stub.gotURL)
		})
	}
}

func TestShorten_MissingField(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"empty json object", "application/json", `{}`},
		{"empty string", "application/json", `{"url":""}`},
		{"whitespace", "application/json", `{"url":"   "}`},
		{"null", "application/json", `{"url":null}`},
		{"number", "application/json", `{"url":123}`},
		{"object", "application/json", `{"url":{"href":"https://a.io"}}`},
		{"array body", "application/json", `["https://a.io"]`},
		{"broken json", "application/json", `{"url":`},
		{"empty body", "application/json", ``},
		{"form without field", "application/x-www-form-urlencoded", "link=https%3A%2F%2Fa.io"},
		{"form empty field", "application/x-www-form-urlencoded", "url="},
		{"oversize body", "application/json", `{"url":"https://a.io/` + strings.Repeat("a", maxBodyBytes) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubShortener{}
			h := newTestHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			h.Shorten(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apperrors.MsgMissingField, decodeError(t, rec))
			assert.Zero(t, stub.calls, "service must not be called")
		})
	}
}

func TestShorten_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid url", apperrors.InvalidURL(nil), http.StatusBadRequest, apperrors.MsgInvalidURL},
		{"backend rejected", apperrors.BackendRejected(http.StatusServiceUnavailable, "rate limited"), http.StatusServiceUnavailable, "rate limited"},
		{"backend unreachable", apperrors.BackendUnreachable(errors.New("refused")), http.StatusInternalServerError, apperrors.MsgInternal},
		{"malformed", apperrors.MalformedBackendResponse(nil), http.StatusBadRequest, apperrors.MsgMalformedResponse},
		{"unexpected", errors.New("secret internal detail"), http.StatusInternalServerError, apperrors.MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubShortener{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"url":"https://a.io"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.Shorten(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec))
		})
	}
}

func TestPreflight(t *testing.T) {
	stub := &stubShortener{}
	h := newTestHandler(stub)

	rec := httptest.NewRecorder()
	h.Preflight(rec, httptest.NewRequest(http.MethodOptions, "/shorten", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Zero(t, stub.calls)
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubShortener{}).Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	newTestHandler(&stubShortener{pingErr: apperrors.BackendUnreachable(errors.New("refused"))}).
		Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperrors.MsgInternal, decodeError(t, rec))
}
