package entities

import "time"

type Order struct {
	OrderID       string
	Owner         string
	Items         []OrderItem
	TotalAmount   float64
	PaymentMethod PaymentMethodType
	Status        OrderStatusType
	CancelReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem снапшот позиции меню на момент оформления заказа.
// Последующие изменения меню на него не влияют.
type OrderItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	ImageURL string
}

type OrderStatusType string

const (
	OrderPlaced    OrderStatusType = "PLACED"
	OrderPreparing OrderStatusType = "PREPARING"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCancelled OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal: из DELIVERED и CANCELLED переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethodType string

const (
	PaymentCard PaymentMethodType = "card"
	PaymentUPI  PaymentMethodType = "upi"
	PaymentNet  PaymentMethodType = "net"
	PaymentCOD  PaymentMethodType = "cod"
)

const DefaultPaymentMethod = PaymentCard

func (t PaymentMethodType) String() string {
	return string(t)
}

// OrderCheckout входные данные оформления заказа.
type OrderCheckout struct {
	Items         []OrderItem
	TotalAmount   float64
	PaymentMethod PaymentMethodType
}

// OrderReceipt результат успешного оформления.
type OrderReceipt struct {
	OrderID string
	Status  OrderStatusType
}

// OrderStatusEvent публикуется в Kafka при каждой смене статуса.
type OrderStatusEvent struct {
	OrderID    string          `json:"order_id"`
	Owner      string          `json:"owner"`
	Status     OrderStatusType `json:"status"`
	OccurredAt time.Time       `json:"occurred_at"`
}
