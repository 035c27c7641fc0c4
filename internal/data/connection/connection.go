package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"esconnector/internal/data/config"
	"esconnector/internal/data/elastic"

	"go.uber.org/zap"
)

var (
	ErrNotInitialized     = errors.New("elasticsearch connector is not initialized")
	ErrAlreadyInitialized = errors.New("elasticsearch connector is already initialized")
)

// Connector owns the lifecycle of the shared elasticsearch client
type Connector struct {
	cfg    *config.Elasticsearch
	logger *zap.Logger

	mu     sync.Mutex
	es     *elastic.Client
	closed bool
}

// New creates a connector for cfg. Nothing is dialed until Initialize.
func New(cfg *config.Elasticsearch, logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{
		cfg:    cfg,
		logger: logger.Named("elasticsearch"),
	}
}

// Initialize builds the client. On error no client is kept and the caller
// should abort startup.
func (c *Connector) Initialize(ctx context.Context) (*elastic.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, elastic.ErrClosed
	}
	if c.es != nil {
		return nil, ErrAlreadyInitialized
	}

	es, err := elastic.NewClient(c.cfg, c.logger)
	if err != nil {
		c.logger.Error("Can not get es client", zap.Error(err))
		return nil, err
	}

	if c.cfg.HealthCheck {
		info, err := es.Info(ctx)
		if err != nil {
			_ = es.Close(ctx)
			err = fmt.Errorf("%w: %w", elastic.ErrConnection, err)
			c.logger.Error("Can not get es client", zap.Error(err))
			return nil, err
		}
		c.logger.Info("Elasticsearch cluster reachable",
			zap.String("cluster_name", info.ClusterName),
			zap.String("version", info.Version.Number))
	}

	c.es = es
	c.logger.Info("Connected es client", zap.String("servers", c.cfg.Servers))

	return es, nil
}

// Client returns the client built by Initialize
func (c *Connector) Client() (*elastic.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		return nil, elastic.ErrClosed
	case c.es == nil:
		return nil, ErrNotInitialized
	}
	return c.es, nil
}

// Shutdown closes the client. It must be called once, after in-flight
// requests have finished; later calls return elastic.ErrClosed.
func (c *Connector) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		return elastic.ErrClosed
	case c.es == nil:
		return ErrNotInitialized
	}

	c.closed = true
	if err := c.es.Close(ctx); err != nil {
		c.logger.Error("Error closing es client", zap.Error(err))
		return err
	}

	c.logger.Info("Close es client")
	return nil
}
