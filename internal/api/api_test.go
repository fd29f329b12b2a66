package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/amcmart-api/internal/health"
	"github.com/MikeMC777/amcmart-api/internal/order"
	"github.com/MikeMC777/amcmart-api/internal/product"
	"github.com/MikeMC777/amcmart-api/internal/promo"
)

//
// ---------- STUBS & FAKES ----------
//

// memProducts implements product.Repository in memory.
type memProducts struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]product.Product
}

func newMemProducts() *memProducts { return &memProducts{items: map[int64]product.Product{}} }

func (m *memProducts) Create(ctx context.Context, p *product.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.items[p.ID] = *p
	return p.ID, nil
}

func (m *memProducts) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) List(ctx context.Context, q product.Query) ([]product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []product.Product{}
	for _, p := range m.items {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProducts) Update(ctx context.Context, id int64, in product.UpdateProductRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return product.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.StockStatus != nil {
		p.StockStatus = *in.StockStatus
	}
	m.items[id] = p
	return nil
}

func (m *memProducts) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

// memPromos implements promo.Repository in memory.
type memPromos struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*promo.PromoCode
}

func newMemPromos(codes ...promo.PromoCode) *memPromos {
	m := &memPromos{items: map[int64]*promo.PromoCode{}}
	for _, c := range codes {
		c := c
		m.Create(context.Background(), &c)
	}
	return m
}

func (m *memPromos) Create(ctx context.Context, p *promo.PromoCode) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.items {
		if e.Code == p.Code {
			return 0, promo.ErrAlreadyExist
		}
	}
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.items[p.ID] = &cp
	return p.ID, nil
}

func (m *memPromos) GetByID(ctx context.Context, id int64) (*promo.PromoCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, promo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPromos) FindApplicable(ctx context.Context, code string) (*promo.PromoCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.Code == code && p.Applicable() {
			cp := *p
			return &cp, nil
		}
	}
	return nil, promo.ErrNotFound
}

func (m *memPromos) List(ctx context.Context) ([]promo.PromoCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []promo.PromoCode{}
	for _, p := range m.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memPromos) Update(ctx context.Context, id int64, in promo.UpdatePromoRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return promo.ErrNotFound
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Used != nil {
		p.Used = *in.Used
	}
	return nil
}

func (m *memPromos) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

// markUsed mirrors the conditional update done inside the order transaction.
func (m *memPromos) markUsed(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.Code == code && p.Applicable() {
			p.Used = promo.UsedYes
			return true
		}
	}
	return false
}

// memOrders implements order.Repository in memory.
type memOrders struct {
	mu     sync.Mutex
	promos *memPromos
	items  []order.Order
	dead   []order.DeadLetter
}

func (m *memOrders) Create(ctx context.Context, o *order.Order) error {
	if o.PromoCode != nil && !m.promos.markUsed(*o.PromoCode) {
		return order.ErrPromoUnavailable
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o.CreatedAt = time.Now()
	m.items = append(m.items, *o)
	return nil
}

func (m *memOrders) SaveDeadLetter(ctx context.Context, dl order.DeadLetter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dead = append(m.dead, dl)
	return nil
}

func (m *memOrders) GetByID(ctx context.Context, id string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.items {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (m *memOrders) List(ctx context.Context, q order.Query) ([]order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []order.Order{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if q.Status == "" || m.items[i].Status == q.Status {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			return nil
		}
	}
	return order.ErrNotFound
}

func (m *memOrders) Customers(ctx context.Context) ([]order.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byPhone := map[string]*order.Customer{}
	for _, o := range m.items {
		c, ok := byPhone[o.PhoneNo]
		if !ok {
			c = &order.Customer{PhoneNo: o.PhoneNo}
			byPhone[o.PhoneNo] = c
		}
		c.FirstName, c.LastName, c.Email, c.LastOrder = o.FirstName, o.LastName, o.Email, o.CreatedAt
		c.TotalOrders++
		c.TotalSpent = c.TotalSpent.Add(o.Total)
	}
	out := []order.Customer{}
	for _, c := range byPhone {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalSpent.GreaterThan(out[j].TotalSpent) })
	return out, nil
}

func (m *memOrders) Stats(ctx context.Context) (*order.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &order.Stats{TotalRevenue: decimal.Zero, DeadLetteredOrders: int64(len(m.dead))}
	phones := map[string]bool{}
	for _, o := range m.items {
		s.TotalOrders++
		s.TotalRevenue = s.TotalRevenue.Add(o.Total)
		phones[o.PhoneNo] = true
		if o.Status != order.StatusDelivered {
			s.PendingOrders++
		}
	}
	s.TotalCustomers = int64(len(phones))
	return s, nil
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

type fakeHealth struct{ down bool }

func (f fakeHealth) Check(ctx context.Context) health.Report {
	r := health.Report{Database: "connected", CheckedAt: time.Now()}
	if f.down {
		r.Database, r.Error = "disconnected", "connection refused"
	}
	return r
}

//
// ---------- HARNESS ----------
//

type harness struct {
	router   *gin.Engine
	products *memProducts
	promos   *memPromos
	orders   *memOrders
	pipeline *order.Pipeline
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newHarness(t *testing.T, mode order.Mode, mutate ...func(*Deps)) *harness {
	t.Helper()
	h := &harness{
		products: newMemProducts(),
		promos: newMemPromos(
			promo.PromoCode{Code: "SAVE50", Discount: decimal.NewFromInt(50), Status: promo.Active, Used: promo.UsedNo},
			promo.PromoCode{Code: "OLD10", Discount: decimal.NewFromInt(10), Status: promo.Inactive, Used: promo.UsedNo},
		),
	}
	h.orders = &memOrders{promos: h.promos}
	checker := promo.NewValidator(h.promos)
	h.pipeline = order.NewPipeline(order.PipelineConfig{Mode: mode, QueueCapacity: 8}, h.orders, checker, nil, quietLogger())

	d := Deps{
		Products: h.products,
		Promos:   h.promos,
		Checker:  checker,
		Orders:   h.orders,
		Intake:   h.pipeline,
		Health:   fakeHealth{},
		Env:      "test",
		Log:      quietLogger(),
	}
	for _, fn := range mutate {
		fn(&d)
	}
	h.router = NewRouter(d)
	return h
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

func (h *harness) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
		}
	}
	return w, env
}

const orderBody = `{
	"firstName": "Rajesh", "lastName": "Kumar", "phoneNo": "9876543210",
	"email": "rajesh@example.com", "address": "123 MG Road", "city": "Mumbai",
	"pincode": "400001", "deliveryType": "express", "paymentMethod": "online",
	"items": [{"name": "Chicken Wings", "quantity": 1}], "total": %s%s
}`

func orderJSON(total, promoCode string) string {
	extra := ""
	if promoCode != "" {
		extra = `, "promocode": "` + promoCode + `"`
	}
	return fmt.Sprintf(orderBody, total, extra)
}

//
// ---------- TESTS ----------
//

func TestProducts_CreateGetList(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, env := h.do(t, http.MethodPost, "/api/products",
		`{"productname":"Chicken Wings","category":"chicken","price_1kg":380,"price_500gm":195,"stock_status":"in_stock"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Product Chicken Wings created successfully!", created.Message)

	p, err := h.products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Image)
	assert.Equal(t, product.DefaultImage, *p.Image)

	w, env = h.do(t, http.MethodGet, "/api/products?category=chicken", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	w, _ = h.do(t, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = h.do(t, http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProducts_CreateReportsMissingFields(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, env := h.do(t, http.MethodPost, "/api/products", `{"productname":"X","price_1kg":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	assert.Contains(t, env.Error, "Missing required fields: category, price_500gm, stock_status")
	assert.Contains(t, env.Error, "price_1kg must be greater than 0")
}

func TestProducts_UpdatePartial(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)
	id, _ := h.products.Create(context.Background(), &product.Product{Name: "Mutton", Category: "mutton", StockStatus: product.InStock})

	w, _ := h.do(t, http.MethodPut, "/api/products/1", `{"stock_status":"out_of_stock"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p, _ := h.products.GetByID(context.Background(), id)
	assert.Equal(t, product.OutOfStock, p.StockStatus)
	assert.Equal(t, "Mutton", p.Name)

	w, _ = h.do(t, http.MethodPut, "/api/products/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(t, http.MethodPut, "/api/products/42", `{"productname":"Y"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProducts_DeleteMissingLeavesCountUnchanged(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)
	h.products.Create(context.Background(), &product.Product{Name: "Prawns", Category: "seafood"})

	w, env := h.do(t, http.MethodDelete, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)

	_, env = h.do(t, http.MethodGet, "/api/products", "")
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	w, _ = h.do(t, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	h := newHarness(t, order.ModeSync, func(d *Deps) {
		d.AdminUser = "admin"
		d.AdminPasswordHash = string(hash)
	})

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodPost, "/api/promocodes"},
		{http.MethodDelete, "/api/promocodes/1"},
		{http.MethodPut, "/api/orders/AMC12AB34CD/status"},
	} {
		w, _ := h.do(t, tc.method, tc.path, `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.method+" "+tc.path)
	}

	w, _ := h.do(t, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/7", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPromoValidate_CaseInsensitive(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	for _, code := range []string{"SAVE50", "save50", " Save50 "} {
		w, env := h.do(t, http.MethodPost, "/api/promo/validate", `{"code":"`+code+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, env.Success, code)
		var applied promo.Applied
		require.NoError(t, json.Unmarshal(env.Data, &applied))
		assert.Equal(t, "SAVE50", applied.Code)
		assert.Equal(t, "Promo code applied! ₹50 discount", applied.Message)
	}
}

func TestPromoValidate_MissAnswersOKWithFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	for _, code := range []string{"NOPE", "old10"} {
		w, env := h.do(t, http.MethodPost, "/api/promo/validate", `{"code":"`+code+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid or expired promo code", env.Error)
	}

	w, _ := h.do(t, http.MethodPost, "/api/promo/validate", `{"code":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromoCodes_CRUD(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, _ := h.do(t, http.MethodPost, "/api/promocodes", `{"code":"welcome20","discount":20}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := h.do(t, http.MethodPost, "/api/promocodes", `{"code":"WELCOME20","discount":20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "already exists")

	_, env = h.do(t, http.MethodGet, "/api/promocodes", "")
	var list []promo.PromoCode
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "WELCOME20", list[0].Code)
	assert.Equal(t, promo.Active, list[0].Status)

	w, _ = h.do(t, http.MethodPut, "/api/promocodes/3", `{"status":"inactive"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(t, http.MethodGet, "/api/promocodes/3", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodDelete, "/api/promocodes/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(t, http.MethodDelete, "/api/promocodes/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrder_SyncPersists(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, env := h.do(t, http.MethodPost, "/api/orders", orderJSON("440", ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rc order.Receipt
	require.NoError(t, json.Unmarshal(env.Data, &rc))
	assert.True(t, rc.Persisted)
	assert.True(t, order.ValidID(rc.OrderID))
	assert.Equal(t, "Rajesh Kumar", rc.CustomerName)

	w, env = h.do(t, http.MethodGet, "/api/orders/"+strings.ToLower(rc.OrderID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var o order.Order
	require.NoError(t, json.Unmarshal(env.Data, &o))
	assert.Equal(t, `[{"name":"Chicken Wings","quantity":1}]`, o.Items)
}

func TestCreateOrder_QueuedAcknowledgesBeforePersisting(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeQueued)

	w, env := h.do(t, http.MethodPost, "/api/orders", orderJSON("440", ""))
	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rc order.Receipt
	require.NoError(t, json.Unmarshal(env.Data, &rc))
	assert.False(t, rc.Persisted)
	assert.Equal(t, 0, h.orders.count())

	_, env = h.do(t, http.MethodGet, "/api/dashboard/stats", "")
	var s order.Stats
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, 1, s.QueueDepth)

	h.pipeline.Close()
	w, _ = h.do(t, http.MethodPost, "/api/orders", orderJSON("440", ""))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateOrder_MissingFieldsNamesAllAndPersistsNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, env := h.do(t, http.MethodPost, "/api/orders", `{"firstName":"A","email":"","items":null}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	assert.Equal(t,
		"Missing required fields: lastName, phoneNo, address, city, pincode, deliveryType, paymentMethod, items, total",
		env.Error)
	assert.Equal(t, 0, h.orders.count())

	w, _ = h.do(t, http.MethodPost, "/api/orders", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_EmptyTotalAndNumericContactFields(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	body := `{"firstName":"","lastName":"Kumar","phoneNo":9876543210,"address":"123 MG Road",
		"city":"","pincode":400001,"deliveryType":"express","paymentMethod":"online",
		"items":[{"name":"Chicken Wings","quantity":1}],"total":""}`
	w, env := h.do(t, http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	assert.Equal(t, "Missing required fields: firstName, city, total", env.Error)
	assert.Equal(t, 0, h.orders.count())

	body = strings.NewReplacer(`"firstName":""`, `"firstName":"Rajesh"`,
		`"city":""`, `"city":"Mumbai"`, `"total":""`, `"total":440`).Replace(body)
	w, _ = h.do(t, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, 1, h.orders.count())
	assert.Equal(t, "400001", h.orders.items[0].Pincode)
	assert.Equal(t, "9876543210", h.orders.items[0].PhoneNo)
}

func TestDecimalsAreJSONNumbers(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)
	_, _ = h.products.Create(context.Background(), &product.Product{
		Name: "Chicken Wings", Category: "chicken", StockStatus: product.InStock,
		PricePerKg: decimal.NewFromInt(380), PriceHalfKg: decimal.RequireFromString("195.50"),
	})

	w, _ := h.do(t, http.MethodGet, "/api/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price_1kg":380`)
	assert.Contains(t, w.Body.String(), `"price_500gm":195.5`)

	_, _ = h.do(t, http.MethodPost, "/api/orders", orderJSON("850.50", ""))
	w, _ = h.do(t, http.MethodGet, "/api/dashboard/stats", "")
	assert.Contains(t, w.Body.String(), `"total_revenue":850.5`)
}

func TestCreateOrder_SingleUsePromo(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, _ := h.do(t, http.MethodPost, "/api/orders", orderJSON("390", "save50"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	_, env := h.do(t, http.MethodPost, "/api/promo/validate", `{"code":"SAVE50"}`)
	assert.False(t, env.Success)

	w, env = h.do(t, http.MethodPost, "/api/orders", orderJSON("390", "SAVE50"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired promo code", env.Error)
	assert.Equal(t, 1, h.orders.count())
}

// racePromos accepts every code so two orders can pass validation before
// either is written.
type racePromos struct{}

func (racePromos) Validate(ctx context.Context, code string) (*promo.Applied, error) {
	return &promo.Applied{Code: code}, nil
}

func TestCreateOrder_PromoUsedBetweenValidationAndWrite(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)
	h.pipeline = order.NewPipeline(order.PipelineConfig{Mode: order.ModeSync}, h.orders, racePromos{}, nil, quietLogger())
	h.router = NewRouter(Deps{
		Products: h.products, Promos: h.promos, Checker: racePromos{}, Orders: h.orders,
		Intake: h.pipeline, Health: fakeHealth{}, Log: quietLogger(),
	})

	w, _ := h.do(t, http.MethodPost, "/api/orders", orderJSON("390", "SAVE50"))
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = h.do(t, http.MethodPost, "/api/orders", orderJSON("390", "SAVE50"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, h.orders.count())
}

func TestOrders_StatusUpdateAndStats(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	var ids []string
	for _, total := range []string{"440", "850.50", "120.25"} {
		_, env := h.do(t, http.MethodPost, "/api/orders", orderJSON(total, ""))
		var rc order.Receipt
		require.NoError(t, json.Unmarshal(env.Data, &rc))
		ids = append(ids, rc.OrderID)
	}

	w, _ := h.do(t, http.MethodPut, "/api/orders/"+ids[0]+"/status", `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, env := h.do(t, http.MethodPut, "/api/orders/"+ids[1]+"/status", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "status must be one of")
	w, _ = h.do(t, http.MethodPut, "/api/orders/AMC00000000/status", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, env = h.do(t, http.MethodGet, "/api/dashboard/stats", "")
	var s order.Stats
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, int64(3), s.TotalOrders)
	assert.Equal(t, "1410.75", s.TotalRevenue.String())
	assert.Equal(t, int64(2), s.PendingOrders)
	assert.Equal(t, int64(1), s.TotalCustomers)

	_, env = h.do(t, http.MethodGet, "/api/orders?status=delivered", "")
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	w, _ = h.do(t, http.MethodGet, "/api/orders?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, env = h.do(t, http.MethodGet, "/api/customers", "")
	var cs []order.Customer
	require.NoError(t, json.Unmarshal(env.Data, &cs))
	require.Len(t, cs, 1)
	assert.Equal(t, int64(3), cs[0].TotalOrders)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeQueued)
	w, _ := h.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "connected", res.Database)
	assert.Equal(t, "test", res.Environment)
	assert.Equal(t, order.ModeQueued, res.IntakeMode)

	down := newHarness(t, order.ModeSync, func(d *Deps) { d.Health = fakeHealth{down: true} })
	w, _ = down.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync)

	w, env := h.do(t, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = h.do(t, http.MethodOptions, "/api/orders", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStoreErrorIs500(t *testing.T) {
	t.Parallel()
	h := newHarness(t, order.ModeSync, func(d *Deps) { d.Orders = failingOrders{d.Orders} })

	w, env := h.do(t, http.MethodGet, "/api/customers", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Error)
}

type failingOrders struct{ order.Repository }

func (failingOrders) Customers(ctx context.Context) ([]order.Customer, error) {
	return nil, errors.New("connection reset")
}

type panickingOrders struct{ order.Repository }

func (panickingOrders) Customers(ctx context.Context) ([]order.Customer, error) {
	panic("customers exploded")
}

func TestPanicIsLoggedWithRequestID(t *testing.T) {
	t.Parallel()
	logger, hook := logtest.NewNullLogger()
	h := newHarness(t, order.ModeSync, func(d *Deps) {
		d.Orders = panickingOrders{d.Orders}
		d.Log = logger
	})

	w, env := h.do(t, http.MethodGet, "/api/customers", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Error)

	rid := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, rid)
	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Message == "handler panic" {
			logged = true
			assert.Equal(t, rid, e.Data["rid"])
		}
	}
	assert.True(t, logged)
}
