package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/presenter"
	"tracker/internal/service/order"
	"tracker/pkg/logger"
)

// Handler - кнопка "Nova solicitação".
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		Patrimony:   &orderCreateDTO.Patrimony,
		Description: &orderCreateDTO.Description,
	}

	created, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	published := true
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEventNotPublished) && created != nil:
			// заявка сохранена, экраны догонит ресинк
			published = false
			h.log.With(
				logger.NewField("order", created.ID),
				logger.NewField("error", err),
			).Warn("order created without event")
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPatrimony),
			errors.Is(err, order.ErrInvalidDescription):
			w.WriteHeader(http.StatusBadRequest)
			return
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
			return
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	response := presenter.Order(created, published)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", response.DetailsPath)
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
