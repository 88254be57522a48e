package dto

// OrderListScreen - экран "Solicitações" для одного фильтра.
type OrderListScreen struct {
	Title         string       `json:"title"`
	Status        string       `json:"status"`
	FilterLabel   string       `json:"filter_label"`
	Count         int          `json:"count"`
	Orders        []OrderItem  `json:"orders"`
	EmptyMessage  string       `json:"empty_message,omitempty"`
	NewOrderPath  string       `json:"new_order_path"`
	NewOrderLabel string       `json:"new_order_label"`
	Loading       bool         `json:"loading"`
	Error         *ScreenError `json:"error,omitempty"`
}

type OrderItem struct {
	ID          string `json:"id"`
	Patrimony   string `json:"patrimony"`
	Description string `json:"description"`
	Status      string `json:"status"`
	When        string `json:"when"`
	DetailsPath string `json:"details_path"`
}

type ScreenError struct {
	Message           string `json:"message"`
	Retryable         bool   `json:"retryable"`
	ContractViolation bool   `json:"contract_violation"`
	RetryLabel        string `json:"retry_label,omitempty"`
}

// OrderDetailsScreen: экран деталей пока знает только идентификатор.
type OrderDetailsScreen struct {
	Title   string `json:"title"`
	OrderID string `json:"order_id"`
}

type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type OrderCreate struct {
	Patrimony   string `json:"patrimony"`
	Description string `json:"description"`
}

type OrderClose struct {
	Solution string `json:"solution"`
}

type Order struct {
	ID          string  `json:"id"`
	Patrimony   string  `json:"patrimony"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Solution    *string `json:"solution,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ClosedAt    *string `json:"closed_at,omitempty"`
	DetailsPath string  `json:"details_path"`

	// false - заявка сохранена, но событие об изменении не ушло в Kafka
	EventPublished bool `json:"event_published"`
}

type PingResponse struct {
	Message       string `json:"message"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
