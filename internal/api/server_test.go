package api_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal"
	"github.com/thep2p/go-staker-manager/internal/api"
	"github.com/thep2p/go-staker-manager/internal/testutils"
	"github.com/thep2p/go-staker-manager/internal/unittest"
)

func startServer(t *testing.T, ports internal.PortAssigner) (fixture, *api.Server, context.CancelFunc) {
	t.Helper()

	f := newFixture(t, nil)
	handler := api.NewRouter(testutils.Logger(t), f.service, f.metrics)
	srv := api.NewServer(testutils.Logger(t), handler, "127.0.0.1", ports)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, srv.Start(ctx))
	return f, srv, cancel
}

// TestServerLifecycle verifies the server is reachable after Start and
// releases its port after Stop.
func TestServerLifecycle(t *testing.T) {
	_, srv, cancel := startServer(t, testutils.NewPortAssigner(t))
	defer cancel()

	ctx := context.Background()
	unittest.RequireHTTPReadyWithinTimeout(t, ctx, srv.URL()+api.PingEndpoint, 2*time.Second)

	unittest.RequireCallMustReturnWithinTimeout(t, srv.Stop, 5*time.Second, "server did not shut down")
	unittest.RequirePortClosesWithinTimeout(t, srv.Port(), 2*time.Second)
}

func TestServerStopWithoutStart(t *testing.T) {
	srv := api.NewServer(testutils.Logger(t), http.NotFoundHandler(), "127.0.0.1", testutils.NewPortAssigner(t))
	unittest.RequireCallMustReturnWithinTimeout(t, srv.Stop, time.Second, "stop without start must not block")
}

func TestServerStartTwice(t *testing.T) {
	_, srv, cancel := startServer(t, testutils.NewPortAssigner(t))
	defer func() {
		cancel()
		srv.Stop()
	}()

	require.Error(t, srv.Start(context.Background()))
}

func TestServerStopsOnContextCancel(t *testing.T) {
	_, srv, cancel := startServer(t, testutils.NewPortAssigner(t))

	cancel()
	unittest.RequireCallMustReturnWithinTimeout(t, func() { <-srv.Done() }, 5*time.Second, "server did not stop after cancel")
}

func TestServerFixedPort(t *testing.T) {
	port := testutils.NewPort(t)
	_, srv, cancel := startServer(t, internal.FixedPort(port))
	defer func() {
		cancel()
		srv.Stop()
	}()

	require.Equal(t, port, srv.Port())

	// a second server on the same port cannot start
	other := api.NewServer(testutils.Logger(t), http.NotFoundHandler(), "127.0.0.1", internal.FixedPort(port))
	require.Error(t, other.Start(context.Background()))
	unittest.RequireCallMustReturnWithinTimeout(t, func() { <-other.Done() }, time.Second, "failed server must report done")
}

func TestServerExposesMetrics(t *testing.T) {
	_, srv, cancel := startServer(t, testutils.NewPortAssigner(t))
	defer func() {
		cancel()
		srv.Stop()
	}()

	client, err := api.NewClient(testutils.Logger(t), testClientConfig(srv.URL()))
	require.NoError(t, err)
	_, err = client.StakerConfigGet(context.Background(), "mainnet")
	require.NoError(t, err)

	resp, err := http.Get(srv.URL() + api.MetricsEndpoint)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), `staker_api_config_reads{network="mainnet"} 1`))
}
