// Package app assembles the service from configuration. Both entrypoints
// share it; only the transport in front of the router differs.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MikeMC777/amcmart-api/internal/api"
	"github.com/MikeMC777/amcmart-api/internal/config"
	"github.com/MikeMC777/amcmart-api/internal/health"
	"github.com/MikeMC777/amcmart-api/internal/notify"
	"github.com/MikeMC777/amcmart-api/internal/order"
	"github.com/MikeMC777/amcmart-api/internal/product"
	"github.com/MikeMC777/amcmart-api/internal/promo"
	"github.com/MikeMC777/amcmart-api/internal/store"
)

type App struct {
	Router *gin.Engine

	cfg        config.Config
	log        logrus.FieldLogger
	db         *store.DB
	sinks      notify.Multi
	hub        *notify.Hub
	dispatcher *notify.Dispatcher
	pipeline   *order.Pipeline
	worker     *order.Worker
	grpc       *health.GRPCServer
	cancel     context.CancelFunc
}

// PipelineConfig translates and checks the intake settings.
func PipelineConfig(cfg config.Config) (order.PipelineConfig, error) {
	pc := order.PipelineConfig{
		Mode:          order.Mode(strings.ToLower(cfg.IntakeMode)),
		QueueCapacity: cfg.QueueCapacity,
		Overflow:      order.Overflow(strings.ToLower(cfg.QueueOverflow)),
		InitialStatus: order.Status(strings.ToLower(cfg.InitialOrderStatus)),
	}
	if pc.Mode != order.ModeSync && pc.Mode != order.ModeQueued {
		return pc, fmt.Errorf("ORDER_INTAKE_MODE must be sync or queued, got %q", cfg.IntakeMode)
	}
	if pc.Overflow != order.OverflowBlock && pc.Overflow != order.OverflowReject {
		return pc, fmt.Errorf("ORDER_QUEUE_OVERFLOW must be block or reject, got %q", cfg.QueueOverflow)
	}
	if !pc.InitialStatus.Valid() {
		return pc, fmt.Errorf("ORDER_INITIAL_STATUS %q is not an order status", cfg.InitialOrderStatus)
	}
	if pc.Mode == order.ModeQueued && pc.QueueCapacity <= 0 {
		return pc, errors.New("ORDER_QUEUE_CAPACITY must be positive")
	}
	return pc, nil
}

// New connects to the store, prepares the schema and starts background
// components. Call Shutdown to release them.
func New(ctx context.Context, cfg config.Config, log *logrus.Logger) (*App, error) {
	pc, err := PipelineConfig(cfg)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(ctx, cfg.PostgresDSN, store.Options{
		MaxConns:     cfg.DBMaxConns,
		QueryTimeout: cfg.DBQueryTimeout,
		Serialize:    cfg.StoreSerialize,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if cfg.SeedSampleData {
		seeded, err := db.Seed(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
		if seeded {
			log.Info("sample data inserted")
		}
	}

	sinks, hub, err := notify.Build(ctx, notify.Options{
		Sinks:        cfg.NotifySinks,
		KafkaBrokers: cfg.KafkaBrokers,
		KafkaTopic:   cfg.KafkaTopic,
		AMQPURL:      cfg.AMQPURL,
		AMQPQueue:    cfg.AMQPQueue,
		SQSQueueURL:  cfg.SQSQueueURL,
		AWSRegion:    cfg.AWSRegion,
	}, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	bg, cancel := context.WithCancel(context.Background())
	a := &App{cfg: cfg, log: log, db: db, sinks: sinks, hub: hub, cancel: cancel}
	if hub != nil {
		go hub.Run(bg)
	}
	a.dispatcher = notify.NewDispatcher(sinks, cfg.NotifyTimeout, log)

	products := product.NewPGRepo(db)
	promos := promo.NewPGRepo(db)
	orders := order.NewPGRepo(db)
	checker := promo.NewValidator(promos)

	a.pipeline = order.NewPipeline(pc, orders, checker, a.dispatcher, log)
	if pc.Mode == order.ModeQueued {
		a.worker = order.NewWorker(order.WorkerConfig{
			MaxAttempts:  cfg.WorkerMaxAttempts,
			RetryBackoff: cfg.WorkerRetryBackoff,
		}, a.pipeline.Jobs(), orders, orders, a.dispatcher, log)
		a.worker.Start(bg)
	}

	checkerHealth := health.NewChecker(db, 2*time.Second)
	deps := api.Deps{
		Products:          products,
		Promos:            promos,
		Checker:           checker,
		Orders:            orders,
		Intake:            a.pipeline,
		Health:            checkerHealth,
		Env:               cfg.Env,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
		Log:               log,
	}
	if a.worker != nil {
		deps.Worker = a.worker
	}
	if hub != nil {
		deps.Feed = hub
	}
	a.Router = api.NewRouter(deps)

	if cfg.GRPCHealthAddr != "" {
		l, err := net.Listen("tcp", cfg.GRPCHealthAddr)
		if err != nil {
			a.Shutdown(context.Background())
			return nil, fmt.Errorf("grpc health listen: %w", err)
		}
		a.grpc = health.NewGRPCServer(checkerHealth, 10*time.Second, log)
		go func() {
			if err := a.grpc.Serve(l); err != nil {
				log.WithError(err).Error("grpc health stopped")
			}
		}()
	}

	log.WithFields(logrus.Fields{
		"intake_mode": pc.Mode,
		"sinks":       strings.Join(cfg.NotifySinks, ","),
		"env":         cfg.Env,
	}).Info("amcmart api ready")
	return a, nil
}

// Shutdown drains the order queue, waits for notifications and closes
// every resource. The HTTP server must already be stopped.
func (a *App) Shutdown(ctx context.Context) {
	a.pipeline.Close()
	if a.worker != nil {
		if err := a.worker.Stop(ctx); err != nil {
			a.log.WithError(err).Warn("order queue drained past the shutdown deadline")
		}
	}
	if err := a.dispatcher.Wait(ctx); err != nil {
		a.log.WithError(err).Warn("notifications still in flight")
	}
	if err := a.sinks.Close(); err != nil {
		a.log.WithError(err).Warn("closing notify sinks")
	}
	if a.grpc != nil {
		a.grpc.Stop()
	}
	a.cancel()
	a.db.Close()
}
