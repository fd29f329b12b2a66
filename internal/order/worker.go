package order

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

type WorkerConfig struct {
	MaxAttempts  int
	RetryBackoff time.Duration
}

// WorkerStats are counters since start.
type WorkerStats struct {
	Persisted    uint64 `json:"persisted"`
	Retried      uint64 `json:"retried"`
	DeadLettered uint64 `json:"dead_lettered"`
	Lost         uint64 `json:"lost"`
}

// Worker is the single consumer of the intake queue. Orders are written
// one at a time in the order they were enqueued.
type Worker struct {
	cfg      WorkerConfig
	jobs     <-chan Job
	store    Persister
	dead     DeadLetterSink
	notifier Notifier
	log      logrus.FieldLogger

	// OnProcessed, when set, is called after each job with the job's
	// sequence number and the final persist error. Set it before Start.
	OnProcessed func(seq uint64, orderID string, err error)

	persisted    atomic.Uint64
	retried      atomic.Uint64
	deadLettered atomic.Uint64
	lost         atomic.Uint64

	done     chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func NewWorker(cfg WorkerConfig, jobs <-chan Job, store Persister, dead DeadLetterSink, notifier Notifier, log logrus.FieldLogger) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryBackoff < 0 {
		cfg.RetryBackoff = 0
	}
	return &Worker{
		cfg:      cfg,
		jobs:     jobs,
		store:    store,
		dead:     dead,
		notifier: notifier,
		log:      log.WithField("component", "worker"),
		done:     make(chan struct{}),
		quit:     make(chan struct{}),
	}
}

// Start launches the consumer goroutine. It returns when the queue is
// closed and drained, not when ctx ends; ctx only scopes store calls.
func (w *Worker) Start(ctx context.Context) {
	go w.run(context.WithoutCancel(ctx))
}

// Stop waits for the queue to drain. The queue must already be closed.
// Once ctx ends the worker stops retrying: every order left gets one more
// attempt and is dead-lettered on failure. Stop still waits for that
// drain, so the store stays open until the worker is done with it, and
// then returns ctx.Err().
func (w *Worker) Stop(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
	}
	w.log.WithField("queue_depth", len(w.jobs)).Warn("shutdown deadline passed, draining without retries")
	w.quitOnce.Do(func() { close(w.quit) })
	<-w.done
	return ctx.Err()
}

func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		Persisted:    w.persisted.Load(),
		Retried:      w.retried.Load(),
		DeadLettered: w.deadLettered.Load(),
		Lost:         w.lost.Load(),
	}
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	w.log.Info("order worker started")
	for job := range w.jobs {
		err := w.process(ctx, job)
		if w.OnProcessed != nil {
			w.OnProcessed(job.Seq, job.Order.ID, err)
		}
	}
	w.log.Info("order worker stopped")
}

func (w *Worker) process(ctx context.Context, job Job) error {
	o := job.Order
	log := w.log.WithFields(logrus.Fields{"orderid": o.ID, "seq": job.Seq})

	var err error
	attempt := 0
	for attempt < w.cfg.MaxAttempts {
		attempt++
		if err = w.store.Create(ctx, &o); err == nil {
			break
		}
		if !retryable(err) || attempt == w.cfg.MaxAttempts {
			break
		}
		if !w.backoff(attempt) {
			log.WithError(err).WithField("attempt", attempt).Warn("persist failed, not retrying during shutdown")
			break
		}
		w.retried.Add(1)
		log.WithError(err).WithField("attempt", attempt).Warn("persist failed, retrying")
	}

	if err == nil {
		w.persisted.Add(1)
		log.WithField("queued_for", time.Since(job.EnqueuedAt).String()).Info("order persisted")
		if w.notifier != nil {
			w.notifier.OrderPlaced(o)
		}
		return nil
	}

	dl := DeadLetter{OrderID: o.ID, Order: o, Error: err.Error(), Attempts: attempt}
	if dlErr := w.dead.SaveDeadLetter(ctx, dl); dlErr != nil {
		w.lost.Add(1)
		log.WithError(err).WithFields(logrus.Fields{
			"order_lost":      true,
			"dead_letter_err": dlErr.Error(),
			"attempts":        attempt,
			"customer_phone":  o.PhoneNo,
			"order_total":     o.Total.String(),
		}).Error("order lost")
		return err
	}
	w.deadLettered.Add(1)
	log.WithError(err).WithFields(logrus.Fields{"dead_letter": true, "attempts": attempt}).Error("order dead-lettered")
	return err
}

// backoff waits before retry n. It returns false without waiting out the
// delay when Stop has given up.
func (w *Worker) backoff(n int) bool {
	select {
	case <-w.quit:
		return false
	default:
	}
	t := time.NewTimer(time.Duration(n) * w.cfg.RetryBackoff)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-w.quit:
		return false
	}
}

func retryable(err error) bool {
	return !errors.Is(err, ErrPromoUnavailable) && !errors.Is(err, ErrDuplicateID)
}
