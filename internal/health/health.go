// Package health reports whether the service can reach its store. The
// same Checker backs the HTTP health route and the gRPC health service.
package health

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Report is the result of one check.
type Report struct {
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"timestamp"`
}

func (r Report) Healthy() bool { return r.Error == "" }

type Checker struct {
	db      Pinger
	timeout time.Duration
}

func NewChecker(db Pinger, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Checker{db: db, timeout: timeout}
}

func (c *Checker) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	r := Report{Database: "connected", CheckedAt: time.Now().UTC()}
	if err := c.db.Ping(ctx); err != nil {
		r.Database = "disconnected"
		r.Error = err.Error()
	}
	return r
}

// GRPCServer serves grpc.health.v1.Health for the empty service name and
// for Service, updating both from the Checker every interval.
type GRPCServer struct {
	srv      *grpc.Server
	health   *grpchealth.Server
	checker  *Checker
	interval time.Duration
	log      logrus.FieldLogger
	stop     chan struct{}
}

const Service = "amcmart.api"

func NewGRPCServer(checker *Checker, interval time.Duration, log logrus.FieldLogger) *GRPCServer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	hs := grpchealth.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return &GRPCServer{
		srv:      srv,
		health:   hs,
		checker:  checker,
		interval: interval,
		log:      log.WithField("component", "grpc-health"),
		stop:     make(chan struct{}),
	}
}

// Refresh runs one check and publishes the result.
func (g *GRPCServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if r := g.checker.Check(ctx); !r.Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		g.log.WithField("error", r.Error).Warn("store unreachable")
	}
	g.health.SetServingStatus("", status)
	g.health.SetServingStatus(Service, status)
	return status
}

// Serve blocks until Stop.
func (g *GRPCServer) Serve(l net.Listener) error {
	g.Refresh(context.Background())
	go func() {
		t := time.NewTicker(g.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				g.Refresh(context.Background())
			case <-g.stop:
				return
			}
		}
	}()
	g.log.WithField("addr", l.Addr().String()).Info("grpc health listening")
	return g.srv.Serve(l)
}

func (g *GRPCServer) Stop() {
	close(g.stop)
	g.health.Shutdown()
	g.srv.GracefulStop()
}
