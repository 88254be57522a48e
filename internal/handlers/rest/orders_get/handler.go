package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/datefmt"
	"tracker/internal/presenter"
	"tracker/internal/service/order"
	"tracker/internal/service/orderlist"
	"tracker/pkg/logger"
)

// Handler отдает экран списка разовым снимком, без подписки.
type Handler struct {
	log       handlerLogger
	service   Service
	presenter *presenter.Presenter
	location  *time.Location
}

func New(log handlerLogger, service Service, presenter *presenter.Presenter, location *time.Location) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		presenter: presenter,
		location:  location,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, ok := entities.ParseOrderStatus(r.URL.Query().Get("status"))
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tag := h.presenter.Locale(r.Header.Get("Accept-Language"))
	state := orderlist.State{Status: status}
	code := http.StatusOK

	orders, err := h.service.GetOrders(r.Context(), status)
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		w.WriteHeader(http.StatusBadRequest)
		return
	case err != nil:
		h.log.With(
			logger.NewField("status", status),
			logger.NewField("error", err),
		).Warn("get orders")
		state.Err = err
		state.Retryable = true
		code = http.StatusServiceUnavailable
	default:
		views, err := orderlist.ProjectAll(orders, datefmt.New(tag, h.location))
		if err != nil {
			h.log.With(
				logger.NewField("status", status),
				logger.NewField("error", err),
			).Error("order snapshot rejected")
			state.Err = err
			code = http.StatusBadGateway
			break
		}
		state.Orders = views
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err = json.NewEncoder(w).Encode(h.presenter.OrderList(tag, state))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
