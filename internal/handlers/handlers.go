package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/apperrors"
	"github.com/Totarae/URLShortenerGateway/internal/middleware"
	"github.com/Totarae/URLShortenerGateway/internal/model"
)

// Shortener - сервис шлюза, к которому обращаются обработчики.
type Shortener interface {
	Shorten(ctx context.Context, rawURL string) (string, error)
	Ping(ctx context.Context) error
}

// Handler обслуживает HTTP-маршруты шлюза.
type Handler struct {
	Service Shortener
	Logger  *zap.Logger
}

func NewHandler(service Shortener, logger *zap.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  logger,
	}
}

// Shorten принимает url формой или JSON и отвечает {"shortUrl": ...} либо {"error": ...}.
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	body, err := readInbound(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.MissingField(err))
		return
	}
	rawURL, err := extractURL(body)
	if err != nil {
		h.WriteError(w, r, apperrors.MissingField(err))
		return
	}

	shortURL, err := h.Service.Shorten(r.Context(), rawURL)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ShortenResponse{ShortURL: shortURL})
}

// Preflight отвечает на CORS-запрос OPTIONS: 200 без тела, бэкенд не вызывается.
func (h *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Ping сообщает, доступен ли бэкенд.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// MethodNotAllowed и NotFound отдают ошибки маршрутизации в общем JSON-формате.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{Error: "Method not allowed"})
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Not found"})
}

// WriteError пишет нормализованную ошибку. Причина попадает только в лог.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.From(err)

	fields := []zap.Field{
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.String("kind", appErr.Kind.String()),
		zap.Int("status", appErr.Status),
	}
	if appErr.Cause != nil {
		fields = append(fields, zap.NamedError("cause", appErr.Cause))
	}
	if appErr.Status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", fields...)
	} else {
		h.Logger.Info("request rejected", fields...)
	}

	writeJSON(w, appErr.Status, model.ErrorResponse{Error: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
