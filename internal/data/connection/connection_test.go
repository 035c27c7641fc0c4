package connection

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"esconnector/internal/data/config"
	"esconnector/internal/data/elastic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newCluster(t *testing.T, status int) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"cluster_name":"test-cluster","version":{"number":"6.2.4"}}`)
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func testConfig(servers string) *config.Elasticsearch {
	cfg := config.DefaultElasticsearch()
	cfg.Servers = servers
	cfg.Username = "elastic"
	cfg.Password = "changeme"
	return cfg
}

func TestConnectorLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	servers := newCluster(t, http.StatusOK)
	c := New(testConfig(servers), zap.New(core))
	ctx := context.Background()

	_, err := c.Client()
	assert.ErrorIs(t, err, ErrNotInitialized)

	es, err := c.Initialize(ctx)
	require.NoError(t, err)
	require.NotNil(t, es)

	connected := logs.FilterMessage("Connected es client").All()
	require.Len(t, connected, 1)
	assert.Equal(t, servers, connected[0].ContextMap()["servers"])

	got, err := c.Client()
	require.NoError(t, err)
	assert.Same(t, es, got)

	_, err = c.Initialize(ctx)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	info, err := got.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test-cluster", info.ClusterName)

	require.NoError(t, c.Shutdown(ctx))
	assert.Equal(t, 1, logs.FilterMessage("Close es client").Len())

	_, err = es.Info(ctx)
	assert.ErrorIs(t, err, elastic.ErrClosed)

	_, err = c.Client()
	assert.ErrorIs(t, err, elastic.ErrClosed)

	assert.ErrorIs(t, c.Shutdown(ctx), elastic.ErrClosed)

	_, err = c.Initialize(ctx)
	assert.ErrorIs(t, err, elastic.ErrClosed)
}

func TestConnectorInvalidServers(t *testing.T) {
	for _, servers := range []string{"es1:abc", "es1", ":9200", "es1:"} {
		t.Run(servers, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			c := New(testConfig(servers), zap.New(core))

			es, err := c.Initialize(context.Background())
			require.Error(t, err)
			assert.Nil(t, es)
			assert.ErrorIs(t, err, elastic.ErrConfiguration)
			assert.Equal(t, 1, logs.FilterMessage("Can not get es client").Len())

			_, err = c.Client()
			assert.ErrorIs(t, err, ErrNotInitialized)
			assert.ErrorIs(t, c.Shutdown(context.Background()), ErrNotInitialized)
		})
	}
}

func TestConnectorHealthCheck(t *testing.T) {
	servers := newCluster(t, http.StatusUnauthorized)

	c := New(testConfig(servers), zaptest.NewLogger(t))
	es, err := c.Initialize(context.Background())
	require.Error(t, err)
	assert.Nil(t, es)
	assert.ErrorIs(t, err, elastic.ErrConnection)

	_, err = c.Client()
	assert.ErrorIs(t, err, ErrNotInitialized)

	cfg := testConfig(servers)
	cfg.HealthCheck = false
	c = New(cfg, nil)
	es, err = c.Initialize(context.Background())
	require.NoError(t, err)
	require.NotNil(t, es)
	require.NoError(t, c.Shutdown(context.Background()))
}
