package navigation

import (
	"fmt"
	"net/url"
	"strings"
)

// Destination - именованный экран, куда может перейти клиент.
type Destination string

const (
	DestinationNew     Destination = "new"
	DestinationDetails Destination = "details"
)

const ParamOrderID = "orderId"

// Route описывает переход. Params обязательны ровно те, что требует Destination.
type Route struct {
	Destination Destination
	Params      map[string]string
}

func New() Route {
	return Route{Destination: DestinationNew}
}

func Details(orderID string) Route {
	return Route{
		Destination: DestinationDetails,
		Params:      map[string]string{ParamOrderID: orderID},
	}
}

// Path отдает HTTP-путь экрана.
func (r Route) Path() (string, error) {
	switch r.Destination {
	case DestinationNew:
		return "/orders", nil
	case DestinationDetails:
		id := strings.TrimSpace(r.Params[ParamOrderID])
		if id == "" {
			return "", fmt.Errorf("route %s: missing %s", r.Destination, ParamOrderID)
		}
		return "/orders/" + url.PathEscape(id), nil
	default:
		return "", fmt.Errorf("unknown destination %q", r.Destination)
	}
}

// MustPath для маршрутов, собранных из уже провалидированных данных.
func (r Route) MustPath() string {
	path, err := r.Path()
	if err != nil {
		panic(err)
	}
	return path
}
