package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/MikeMC777/amcmart-api/internal/promo"
	"github.com/MikeMC777/amcmart-api/internal/validation"
)

var (
	ErrQueueFull      = errors.New("order queue is full")
	ErrPipelineClosed = errors.New("order intake is shut down")
)

// ValidationError lists every field of a submission that failed.
type ValidationError = validation.Error

type Mode string

const (
	ModeSync   Mode = "sync"
	ModeQueued Mode = "queued"
)

type Overflow string

const (
	OverflowBlock  Overflow = "block"
	OverflowReject Overflow = "reject"
)

// MaxIDAttempts bounds id regeneration after a primary-key collision.
const MaxIDAttempts = 3

// PromoChecker is satisfied by *promo.Validator.
type PromoChecker interface {
	Validate(ctx context.Context, code string) (*promo.Applied, error)
}

// Notifier receives orders once they are persisted. Implementations must
// not block the caller.
type Notifier interface {
	OrderPlaced(o Order)
}

type PipelineConfig struct {
	Mode          Mode
	QueueCapacity int
	Overflow      Overflow
	InitialStatus Status
}

// Job is one queued order. Seq is the enqueue position, starting at 1.
type Job struct {
	Seq        uint64
	Order      Order
	EnqueuedAt time.Time
}

// Pipeline validates submissions, assigns ids and either persists them
// inline or hands them to the Worker.
type Pipeline struct {
	cfg      PipelineConfig
	store    Persister
	promos   PromoChecker
	notifier Notifier
	validate *validatorv10.Validate
	log      logrus.FieldLogger

	mu     sync.Mutex
	closed bool
	seq    uint64
	jobs   chan Job
}

func NewPipeline(cfg PipelineConfig, store Persister, promos PromoChecker, notifier Notifier, log logrus.FieldLogger) *Pipeline {
	if cfg.Mode == "" {
		cfg.Mode = ModeQueued
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 1024
	}
	if cfg.Overflow == "" {
		cfg.Overflow = OverflowBlock
	}
	if !cfg.InitialStatus.Valid() {
		cfg.InitialStatus = StatusProcessing
	}
	p := &Pipeline{
		cfg:      cfg,
		store:    store,
		promos:   promos,
		notifier: notifier,
		validate: newValidator(),
		log:      log.WithField("component", "intake"),
	}
	if cfg.Mode == ModeQueued {
		p.jobs = make(chan Job, cfg.QueueCapacity)
	}
	return p
}

func (p *Pipeline) Mode() Mode { return p.cfg.Mode }

// Jobs is the queue the Worker consumes. It is nil in sync mode.
func (p *Pipeline) Jobs() <-chan Job { return p.jobs }

// Depth is the number of orders waiting to be persisted.
func (p *Pipeline) Depth() int {
	if p.jobs == nil {
		return 0
	}
	return len(p.jobs)
}

// Submit validates req and accepts it. In sync mode the order is durable
// when Submit returns; in queued mode it only has been enqueued.
func (p *Pipeline) Submit(ctx context.Context, req CreateOrderRequest) (*Receipt, error) {
	if err := validation.Check(p.validate, req); err != nil {
		return nil, err
	}

	o := Order{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		PhoneNo:       strings.TrimSpace(string(req.PhoneNo)),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		Pincode:       strings.TrimSpace(string(req.Pincode)),
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
		Items:         string(req.Items),
		Total:         req.Total.Decimal,
		Status:        p.cfg.InitialStatus,
	}

	if code := promo.Normalize(req.PromoCode); code != "" {
		applied, err := p.promos.Validate(ctx, code)
		if err != nil {
			return nil, err
		}
		o.PromoCode = &applied.Code
	}

	if p.cfg.Mode == ModeSync {
		return p.persist(ctx, o)
	}
	return p.enqueue(ctx, o)
}

func (p *Pipeline) persist(ctx context.Context, o Order) (*Receipt, error) {
	var err error
	for attempt := 1; attempt <= MaxIDAttempts; attempt++ {
		if o.ID, err = NewID(); err != nil {
			return nil, fmt.Errorf("generate order id: %w", err)
		}
		err = p.store.Create(ctx, &o)
		if !errors.Is(err, ErrDuplicateID) {
			break
		}
		p.log.WithField("orderid", o.ID).Warn("order id collision, regenerating")
	}
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{"orderid": o.ID, "total": o.Total.String()}).Info("order persisted")
	if p.notifier != nil {
		p.notifier.OrderPlaced(o)
	}
	return &Receipt{
		OrderID:      o.ID,
		Message:      "Order placed successfully!",
		CustomerName: o.CustomerName(),
		Status:       o.Status,
		Persisted:    true,
	}, nil
}

func (p *Pipeline) enqueue(ctx context.Context, o Order) (*Receipt, error) {
	id, err := NewID()
	if err != nil {
		return nil, fmt.Errorf("generate order id: %w", err)
	}
	o.ID = id

	// The lock covers the sequence number and the send so that Seq is the
	// order in which jobs enter the channel. Close takes the same lock.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrPipelineClosed
	}
	job := Job{Seq: p.seq + 1, Order: o, EnqueuedAt: time.Now()}

	switch p.cfg.Overflow {
	case OverflowReject:
		select {
		case p.jobs <- job:
		default:
			return nil, ErrQueueFull
		}
	default:
		select {
		case p.jobs <- job:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrQueueFull, ctx.Err())
		}
	}
	p.seq = job.Seq

	p.log.WithFields(logrus.Fields{"orderid": o.ID, "seq": job.Seq}).Debug("order queued")
	return &Receipt{
		OrderID:      o.ID,
		Message:      "Order received and queued for processing",
		CustomerName: o.CustomerName(),
		Status:       o.Status,
		Persisted:    false,
	}, nil
}

// Close stops accepting orders and closes the queue, which tells the
// Worker to drain and exit. It is safe to call more than once.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.jobs != nil {
		close(p.jobs)
	}
}
