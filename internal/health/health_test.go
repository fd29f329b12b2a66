package health

import (
	"context"
	"errors"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type flipPinger struct{ down atomic.Bool }

func (p *flipPinger) Ping(ctx context.Context) error {
	if p.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestChecker(t *testing.T) {
	p := &flipPinger{}
	c := NewChecker(p, time.Second)

	r := c.Check(context.Background())
	assert.True(t, r.Healthy())
	assert.Equal(t, "connected", r.Database)

	p.down.Store(true)
	r = c.Check(context.Background())
	assert.False(t, r.Healthy())
	assert.Equal(t, "disconnected", r.Database)
	assert.Equal(t, "connection refused", r.Error)
}

func TestGRPCServer_ReportsStoreState(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	p := &flipPinger{}
	g := NewGRPCServer(NewChecker(p, time.Second), time.Hour, log)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go g.Serve(l)
	defer g.Stop()

	conn, err := grpc.Dial(l.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: Service}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)

	p.down.Store(true)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, g.Refresh(ctx))
	res, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, res.Status)
}
