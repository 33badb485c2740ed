package order

import "time"

type OrderDB struct {
	ID            int64
	OrderID       string
	Owner         string
	Items         []byte // jsonb-снапшот позиций
	TotalAmount   float64
	PaymentMethod string
	Status        string
	CancelReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type itemDB struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}
