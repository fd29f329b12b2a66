// Package notify delivers order-placed events to external collaborators.
// Delivery is best effort: failures are logged and never reach the
// order path.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/MikeMC777/amcmart-api/internal/order"
)

const EventOrderPlaced = "order.placed"

// Event is the payload published for every persisted order.
type Event struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email,omitempty"`
	PhoneNo       string          `json:"phone_no"`
	City          string          `json:"city"`
	DeliveryType  string          `json:"delivery_type"`
	PaymentMethod string          `json:"payment_method"`
	PromoCode     string          `json:"promocode,omitempty"`
	Items         string          `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        order.Status    `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	EventTime     time.Time       `json:"event_time"`
}

func FromOrder(o order.Order) Event {
	ev := Event{
		Type:          EventOrderPlaced,
		OrderID:       o.ID,
		CustomerName:  o.CustomerName(),
		Email:         o.Email,
		PhoneNo:       o.PhoneNo,
		City:          o.City,
		DeliveryType:  o.DeliveryType,
		PaymentMethod: o.PaymentMethod,
		Items:         o.Items,
		Total:         o.Total,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		EventTime:     time.Now().UTC(),
	}
	if o.PromoCode != nil {
		ev.PromoCode = *o.PromoCode
	}
	return ev
}

func (e Event) encode() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return b, nil
}

// Sink publishes events to one destination.
type Sink interface {
	Name() string
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Multi fans an event out to every sink. A failing sink does not stop
// the others.
type Multi []Sink

func (m Multi) Name() string { return "multi" }

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Dispatcher implements order.Notifier. Each event is published on its
// own goroutine with a timeout; Wait blocks until all of them finish.
type Dispatcher struct {
	sink    Sink
	timeout time.Duration
	log     logrus.FieldLogger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ order.Notifier = (*Dispatcher)(nil)

func NewDispatcher(sink Sink, timeout time.Duration, log logrus.FieldLogger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{sink: sink, timeout: timeout, log: log.WithField("component", "notify")}
}

func (d *Dispatcher) OrderPlaced(o order.Order) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.WithField("orderid", o.ID).Warn("dispatcher closed, notification skipped")
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	ev := FromOrder(o)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.log.WithField("orderid", ev.OrderID).Errorf("notification panic: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sink.Publish(ctx, ev); err != nil {
			d.log.WithError(err).WithField("orderid", ev.OrderID).Warn("notification failed")
			return
		}
		d.log.WithField("orderid", ev.OrderID).Debug("notification sent")
	}()
}

// Wait stops accepting events and waits for in-flight ones or ctx.
func (d *Dispatcher) Wait(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
