package order_details_get

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"tracker/internal/pkg/navigation"
	"tracker/internal/presenter"
	"tracker/pkg/logger"
)

// Handler - экран "Solicitação". Пока он знает только идентификатор заявки,
// в хранилище не ходит.
type Handler struct {
	log       handlerLogger
	presenter *presenter.Presenter
}

func New(log handlerLogger, presenter *presenter.Presenter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		presenter: presenter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)[navigation.ParamOrderID]
	if err := uuid.Validate(orderID); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tag := h.presenter.Locale(r.Header.Get("Accept-Language"))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(h.presenter.OrderDetails(tag, orderID))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
