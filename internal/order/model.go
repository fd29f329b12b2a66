package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID            string          `json:"orderid"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	PhoneNo       string          `json:"phoneNo"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Pincode       string          `json:"pincode"`
	DeliveryType  string          `json:"deliveryType"`
	PaymentMethod string          `json:"paymentMethod"`
	PromoCode     *string         `json:"promocode"`
	Items         string          `json:"items"` // opaque, stored as sent
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustomerName is the display name used in acknowledgements.
func (o Order) CustomerName() string { return o.FirstName + " " + o.LastName }

// Customer is derived from orders grouped by phone number.
type Customer struct {
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	PhoneNo     string          `json:"phoneNo"`
	TotalOrders int64           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	LastOrder   time.Time       `json:"last_order"`
}

type Stats struct {
	TotalOrders        int64           `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCustomers     int64           `json:"total_customers"`
	PendingOrders      int64           `json:"pending_orders"`
	DeadLetteredOrders int64           `json:"dead_lettered_orders"`
	QueueDepth         int             `json:"queue_depth"`
}

// DeadLetter records an order the worker gave up on.
type DeadLetter struct {
	OrderID  string
	Order    Order
	Error    string
	Attempts int
}
