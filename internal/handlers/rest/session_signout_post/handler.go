package session_signout_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tracker/internal/presenter"
	"tracker/internal/service/session"
	"tracker/pkg/logger"
)

const bearerPrefix = "bearer "

// Handler - пункт "Sair". Успех - 204, переход на экран входа делает клиент
// по смене состояния авторизации. Любая ошибка - ровно один алерт, без повторов.
type Handler struct {
	log       handlerLogger
	service   Service
	presenter *presenter.Presenter
}

func New(log handlerLogger, service Service, presenter *presenter.Presenter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		presenter: presenter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.SignOut(r.Context(), bearerToken(r))
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrSessionNotFound):
		code = http.StatusUnauthorized
	default:
		h.log.With(
			logger.NewField("error", err),
		).Error("sign out")
	}

	tag := h.presenter.Locale(r.Header.Get("Accept-Language"))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err = json.NewEncoder(w).Encode(h.presenter.SignOutFailed(tag))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
