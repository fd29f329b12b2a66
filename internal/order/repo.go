package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/amcmart-api/internal/store"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateID means the generated id already exists.
	ErrDuplicateID = errors.New("order id already exists")
	// ErrPromoUnavailable means the promo code was used or deactivated
	// between validation and the order write.
	ErrPromoUnavailable = errors.New("promo code is no longer available")
)

// Persister writes one order.
type Persister interface {
	Create(ctx context.Context, o *Order) error
}

// DeadLetterSink records orders that could not be persisted.
type DeadLetterSink interface {
	SaveDeadLetter(ctx context.Context, dl DeadLetter) error
}

type Query struct {
	Status Status
	Limit  int
	Offset int
}

type Repository interface {
	Persister
	DeadLetterSink
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, q Query) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Customers(ctx context.Context) ([]Customer, error)
	Stats(ctx context.Context) (*Stats, error)
}

type PGRepo struct{ db *store.DB }

func NewPGRepo(db *store.DB) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `orderid, first_name, last_name, phone_no, email, address, city, pincode,
	delivery_type, payment_method, promocode, items, total, status, created_at`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.PhoneNo, &o.Email, &o.Address, &o.City,
		&o.Pincode, &o.DeliveryType, &o.PaymentMethod, &o.PromoCode, &o.Items, &o.Total, &o.Status, &o.CreatedAt)
}

// Create inserts the order and, when it carries a promo code, marks the
// code used in the same transaction. created_at is set by the database.
func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	err := r.db.WithTx(ctx, func(ctx context.Context, q store.Querier) error {
		if err := q.QueryRow(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NOW())
			RETURNING created_at
		`, o.ID, o.FirstName, o.LastName, o.PhoneNo, o.Email, o.Address, o.City, o.Pincode,
			o.DeliveryType, o.PaymentMethod, o.PromoCode, o.Items, o.Total, o.Status).Scan(&o.CreatedAt); err != nil {
			return err
		}

		if o.PromoCode == nil {
			return nil
		}
		tag, err := q.Exec(ctx, `
			UPDATE promocodes SET used = 'yes'
			WHERE code = $1 AND status = 'active' AND used = 'no'
		`, *o.PromoCode)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrPromoUnavailable
		}
		return nil
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		return ErrDuplicateID
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.FetchOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE orderid=$1`, []any{id},
		&o.ID, &o.FirstName, &o.LastName, &o.PhoneNo, &o.Email, &o.Address, &o.City,
		&o.Pincode, &o.DeliveryType, &o.PaymentMethod, &o.PromoCode, &o.Items, &o.Total, &o.Status, &o.CreatedAt)
	if store.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Order, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	out := []Order{}
	err := r.db.FetchAll(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, func(rows pgx.Rows) error {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return err
		}
		out = append(out, o)
		return nil
	}, string(q.Status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	n, err := r.db.Exec(ctx, `UPDATE orders SET status = $2 WHERE orderid = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Customers(ctx context.Context) ([]Customer, error) {
	out := []Customer{}
	err := r.db.FetchAll(ctx, `
		SELECT (array_agg(first_name ORDER BY created_at DESC))[1],
		       (array_agg(last_name  ORDER BY created_at DESC))[1],
		       (array_agg(email      ORDER BY created_at DESC))[1],
		       phone_no,
		       COUNT(*),
		       COALESCE(SUM(total), 0),
		       MAX(created_at)
		FROM orders
		GROUP BY phone_no
		ORDER BY 6 DESC
	`, func(rows pgx.Rows) error {
		var c Customer
		if err := rows.Scan(&c.FirstName, &c.LastName, &c.Email, &c.PhoneNo,
			&c.TotalOrders, &c.TotalSpent, &c.LastOrder); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *PGRepo) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.FetchOne(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total), 0),
		       COUNT(DISTINCT phone_no),
		       COUNT(*) FILTER (WHERE status <> 'delivered'),
		       (SELECT COUNT(*) FROM order_dead_letters)
		FROM orders
	`, nil, &s.TotalOrders, &s.TotalRevenue, &s.TotalCustomers, &s.PendingOrders, &s.DeadLetteredOrders)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}

func (r *PGRepo) SaveDeadLetter(ctx context.Context, dl DeadLetter) error {
	payload, err := json.Marshal(dl.Order)
	if err != nil {
		return fmt.Errorf("encode dead letter: %w", err)
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO order_dead_letters (orderid, payload, error, attempts)
		VALUES ($1,$2,$3,$4)
	`, dl.OrderID, payload, dl.Error, dl.Attempts); err != nil {
		return fmt.Errorf("save dead letter: %w", err)
	}
	return nil
}
