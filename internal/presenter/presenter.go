package presenter

import (
	"time"

	"golang.org/x/text/language"
	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/pkg/i18n"
	"tracker/internal/pkg/navigation"
	"tracker/internal/service/orderlist"
)

// Presenter собирает экранные модели из состояния и строк каталога.
// Одни и те же модели уходят в JSON, SSE и терминал.
type Presenter struct {
	translator *i18n.Translator
}

func New(translator *i18n.Translator) *Presenter {
	return &Presenter{translator: translator}
}

// Locale выбирает язык экрана по Accept-Language.
func (p *Presenter) Locale(acceptLanguage string) language.Tag {
	return p.translator.Match(acceptLanguage)
}

func (p *Presenter) OrderList(tag language.Tag, state orderlist.State) dto.OrderListScreen {
	screen := dto.OrderListScreen{
		Title:         p.translator.Text(tag, i18n.KeyOrdersTitle),
		Status:        state.Status.String(),
		FilterLabel:   p.filterLabel(tag, state.Status),
		Count:         len(state.Orders),
		Orders:        make([]dto.OrderItem, 0, len(state.Orders)),
		NewOrderPath:  navigation.New().MustPath(),
		NewOrderLabel: p.translator.Text(tag, i18n.KeyNewOrder),
		Loading:       state.Loading,
	}

	for _, view := range state.Orders {
		screen.Orders = append(screen.Orders, dto.OrderItem{
			ID:          view.ID,
			Patrimony:   view.Patrimony,
			Description: view.Description,
			Status:      view.Status.String(),
			When:        view.When,
			DetailsPath: detailsPath(view.ID),
		})
	}

	if state.Empty() {
		screen.EmptyMessage = p.emptyMessage(tag, state.Status)
	}

	if state.Err != nil {
		screen.Error = p.screenError(tag, state)
	}

	return screen
}

func (p *Presenter) OrderDetails(tag language.Tag, orderID string) dto.OrderDetailsScreen {
	return dto.OrderDetailsScreen{
		Title:   p.translator.Text(tag, i18n.KeyOrderDetailsTitle),
		OrderID: orderID,
	}
}

// SignOutFailed - единственный алерт, который показывает выход из аккаунта.
func (p *Presenter) SignOutFailed(tag language.Tag) dto.Alert {
	return dto.Alert{
		Title:   p.translator.Text(tag, i18n.KeySignOutTitle),
		Message: p.translator.Text(tag, i18n.KeySignOutFailed),
	}
}

// Order - полная заявка для ответов на запись; даты в RFC 3339.
func Order(order *entities.Order, eventPublished bool) dto.Order {
	res := dto.Order{
		ID:             order.ID,
		Patrimony:      order.Patrimony,
		Description:    order.Description,
		Status:         order.Status.String(),
		Solution:       order.Solution,
		DetailsPath:    detailsPath(order.ID),
		EventPublished: eventPublished,
	}
	if order.CreatedAt != nil {
		res.CreatedAt = order.CreatedAt.AsTime().UTC().Format(time.RFC3339)
	}
	if order.ClosedAt != nil {
		closed := order.ClosedAt.AsTime().UTC().Format(time.RFC3339)
		res.ClosedAt = &closed
	}
	return res
}

func (p *Presenter) filterLabel(tag language.Tag, status entities.OrderStatusType) string {
	if status == entities.OrderClosed {
		return p.translator.Text(tag, i18n.KeyFilterClosed)
	}
	return p.translator.Text(tag, i18n.KeyFilterOpen)
}

func (p *Presenter) emptyMessage(tag language.Tag, status entities.OrderStatusType) string {
	if status == entities.OrderClosed {
		return p.translator.Text(tag, i18n.KeyEmptyClosed)
	}
	return p.translator.Text(tag, i18n.KeyEmptyOpen)
}

func (p *Presenter) screenError(tag language.Tag, state orderlist.State) *dto.ScreenError {
	res := &dto.ScreenError{
		Message:           p.translator.Text(tag, i18n.KeyLoadFailed),
		Retryable:         state.Retryable,
		ContractViolation: state.ContractViolation(),
	}
	if res.ContractViolation {
		res.Message = p.translator.Text(tag, i18n.KeyInvalidData)
	}
	if res.Retryable {
		res.RetryLabel = p.translator.Text(tag, i18n.KeyRetry)
	}
	return res
}

func detailsPath(orderID string) string {
	path, err := navigation.Details(orderID).Path()
	if err != nil {
		return ""
	}
	return path
}
