package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id           BIGSERIAL PRIMARY KEY,
		productname  TEXT NOT NULL,
		category     TEXT NOT NULL,
		price_1kg    NUMERIC(12,2) NOT NULL,
		price_500gm  NUMERIC(12,2) NOT NULL,
		stock_status TEXT NOT NULL DEFAULT 'in_stock',
		image        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		orderid        TEXT PRIMARY KEY,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		phone_no       TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		address        TEXT NOT NULL,
		city           TEXT NOT NULL,
		pincode        TEXT NOT NULL,
		delivery_type  TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		promocode      TEXT,
		items          TEXT NOT NULL,
		total          NUMERIC(12,2) NOT NULL,
		status         TEXT NOT NULL DEFAULT 'processing',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_phone_no ON orders(phone_no)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS promocodes (
		id       BIGSERIAL PRIMARY KEY,
		code     TEXT UNIQUE NOT NULL,
		discount NUMERIC(12,2) NOT NULL,
		status   TEXT NOT NULL DEFAULT 'active',
		used     TEXT NOT NULL DEFAULT 'no'
	)`,
	`CREATE TABLE IF NOT EXISTS order_dead_letters (
		id         BIGSERIAL PRIMARY KEY,
		orderid    TEXT NOT NULL,
		payload    JSONB NOT NULL,
		error      TEXT NOT NULL,
		attempts   INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the tables when they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	return db.WithTx(ctx, func(ctx context.Context, q Querier) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}

// Seed inserts the demo catalog, promo codes and orders. It does nothing
// once the products table has rows. It reports whether rows were inserted.
func (db *DB) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := db.WithTx(ctx, func(ctx context.Context, q Querier) error {
		var n int
		if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, p := range sampleProducts {
			batch.Queue(`
				INSERT INTO products (productname, category, price_1kg, price_500gm, stock_status, image)
				VALUES ($1,$2,$3,$4,$5,$6)
			`, p...)
		}
		for _, p := range samplePromos {
			batch.Queue(`
				INSERT INTO promocodes (code, discount, status, used)
				VALUES ($1,$2,$3,$4) ON CONFLICT (code) DO NOTHING
			`, p...)
		}
		for _, o := range sampleOrders {
			batch.Queue(`
				INSERT INTO orders (orderid, first_name, last_name, phone_no, email, address, city, pincode,
				                    delivery_type, payment_method, promocode, items, total, status, created_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NULLIF($11,''),$12,$13,$14,$15::timestamptz)
				ON CONFLICT (orderid) DO NOTHING
			`, o...)
		}

		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		seeded = true
		return nil
	})
	return seeded, err
}

const placeholder = "https://via.placeholder.com/300x250"

var sampleProducts = [][]any{
	{"Premium Chicken Breast", "chicken", "450", "230", "in_stock", placeholder + "/e74c3c/ffffff?text=Chicken+Breast"},
	{"Fresh Mutton Curry Cut", "mutton", "650", "330", "in_stock", placeholder + "/8e44ad/ffffff?text=Mutton+Curry"},
	{"Chicken Biryani Cut", "chicken", "420", "215", "in_stock", placeholder + "/e74c3c/ffffff?text=Biryani+Cut"},
	{"Mutton Leg Pieces", "mutton", "680", "345", "in_stock", placeholder + "/8e44ad/ffffff?text=Leg+Pieces"},
	{"Chicken Wings", "chicken", "380", "195", "in_stock", placeholder + "/e74c3c/ffffff?text=Chicken+Wings"},
	{"Mutton Ribs", "mutton", "720", "365", "out_of_stock", placeholder + "/95a5a6/ffffff?text=Out+of+Stock"},
	{"Chicken Drumsticks", "chicken", "400", "205", "in_stock", placeholder + "/e74c3c/ffffff?text=Drumsticks"},
	{"Mutton Shoulder", "mutton", "700", "355", "in_stock", placeholder + "/8e44ad/ffffff?text=Shoulder"},
}

var samplePromos = [][]any{
	{"WELCOME10", "10", "active", "no"},
	{"SAVE50", "50", "active", "no"},
	{"FIRST20", "20", "active", "no"},
	{"NEWUSER15", "15", "active", "no"},
	{"CHICKEN5", "5", "active", "no"},
	{"MUTTON25", "25", "active", "yes"},
	{"EXPIRED30", "30", "inactive", "no"},
}

var sampleOrders = [][]any{
	{"AMC12345678", "Rajesh", "Kumar", "9876543210", "rajesh@example.com", "123 MG Road", "Mumbai", "400001", "express", "online", "WELCOME10",
		`[{"name":"Premium Chicken Breast","price":450,"quantity":1,"weight":"1kg"}]`, "440", "delivered", "2024-01-15T10:30:00Z"},
	{"AMC87654321", "Priya", "Sharma", "9876543211", "priya@example.com", "456 Brigade Road", "Bangalore", "560001", "standard", "cod", "",
		`[{"name":"Fresh Mutton Curry Cut","price":650,"quantity":1,"weight":"1kg"}]`, "650", "processing", "2024-01-16T14:20:00Z"},
	{"AMC11223344", "Amit", "Singh", "9876543212", "amit@example.com", "789 Park Street", "Kolkata", "700001", "express", "online", "SAVE50",
		`[{"name":"Chicken Biryani Cut","price":420,"quantity":2,"weight":"1kg"}]`, "790", "shipped", "2024-01-17T09:15:00Z"},
	{"AMC55667788", "Anita", "Reddy", "9876543213", "anita@example.com", "321 Anna Salai", "Chennai", "600001", "standard", "online", "",
		`[{"name":"Mutton Leg Pieces","price":680,"quantity":1,"weight":"1kg"},{"name":"Chicken Wings","price":380,"quantity":1,"weight":"1kg"}]`, "1060", "delivered", "2024-01-18T16:45:00Z"},
	{"AMC99887766", "Vikram", "Patel", "9876543214", "vikram@example.com", "654 SG Highway", "Ahmedabad", "380001", "express", "cod", "FIRST20",
		`[{"name":"Premium Chicken Breast","price":450,"quantity":1,"weight":"500gm"}]`, "210", "processing", "2024-01-19T11:30:00Z"},
	{"AMC44556677", "Neha", "Gupta", "9876543215", "neha@example.com", "987 Sector 17", "Chandigarh", "160001", "standard", "online", "",
		`[{"name":"Chicken Drumsticks","price":400,"quantity":2,"weight":"1kg"}]`, "800", "shipped", "2024-01-20T13:20:00Z"},
	{"AMC33445566", "Ravi", "Mehta", "9876543216", "ravi@example.com", "147 Civil Lines", "Delhi", "110001", "express", "online", "CHICKEN5",
		`[{"name":"Mutton Shoulder","price":700,"quantity":1,"weight":"1kg"}]`, "695", "delivered", "2024-01-21T15:10:00Z"},
	{"AMC77889900", "Sunita", "Joshi", "9876543217", "sunita@example.com", "258 FC Road", "Pune", "411001", "standard", "cod", "",
		`[{"name":"Fresh Mutton Curry Cut","price":650,"quantity":1,"weight":"500gm"},{"name":"Chicken Wings","price":380,"quantity":1,"weight":"500gm"}]`, "525", "processing", "2024-01-22T12:45:00Z"},
}
