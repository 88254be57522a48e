package order_close_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/internal/pkg/navigation"
	"tracker/internal/presenter"
	"tracker/internal/service/order"
	"tracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)[navigation.ParamOrderID]

	var orderCloseDTO dto.OrderClose
	err := json.NewDecoder(r.Body).Decode(&orderCloseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	closed, err := h.service.CloseOrder(r.Context(), orderID, orderCloseDTO.Solution)
	published := true
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEventNotPublished) && closed != nil:
			published = false
			h.log.With(
				logger.NewField("order", closed.ID),
				logger.NewField("error", err),
			).Warn("order closed without event")
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidSolution):
			w.WriteHeader(http.StatusBadRequest)
			return
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
			return
		case errors.Is(err, order.ErrOrderAlreadyClosed):
			w.WriteHeader(http.StatusConflict)
			return
		default:
			h.log.With(
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			).Error("close order")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.Order(closed, published))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
