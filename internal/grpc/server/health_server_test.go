package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/magabrotheeeer/health-tracker/internal/grpc/client"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

type fakePinger struct {
	fail atomic.Bool
}

func (p *fakePinger) Ping(context.Context) error {
	if p.fail.Load() {
		return errors.New("down")
	}
	return nil
}

func startServer(t *testing.T, checks map[string]Pinger) (*HealthServer, *client.HealthClient) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewHealthServer(lis, checks, time.Hour, sl.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	c, err := client.NewHealthClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return srv, c
}

func TestHealthServer_Serving(t *testing.T) {
	store := &fakePinger{}
	cache := &fakePinger{}
	_, c := startServer(t, map[string]Pinger{"storage": store, "redis": cache})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Eventually(t, func() bool {
		ok, err := c.Check(ctx, "")
		return err == nil && ok
	}, 3*time.Second, 20*time.Millisecond)

	ok, err := c.Check(ctx, "storage")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHealthServer_DependencyDown(t *testing.T) {
	store := &fakePinger{}
	redis := &fakePinger{}
	srv, c := startServer(t, map[string]Pinger{"storage": store, "redis": redis})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := func(service string, want bool) func() bool {
		return func() bool {
			ok, err := c.Check(ctx, service)
			return err == nil && ok == want
		}
	}

	redis.fail.Store(true)
	srv.Probe(ctx)
	require.Eventually(t, status("", false), 3*time.Second, 20*time.Millisecond)
	require.Eventually(t, status("redis", false), 3*time.Second, 20*time.Millisecond)
	assert.Eventually(t, status("storage", true), 3*time.Second, 20*time.Millisecond)

	redis.fail.Store(false)
	srv.Probe(ctx)
	assert.Eventually(t, status("", true), 3*time.Second, 20*time.Millisecond)
}

func TestHealthClient_UnknownService(t *testing.T) {
	_, c := startServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.Check(ctx, "missing")
	assert.Error(t, err)
}
