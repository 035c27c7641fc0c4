package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"esconnector/internal/api/response"
	"esconnector/internal/data/elastic"
	"esconnector/internal/version"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Cluster is the part of the elasticsearch client the API needs
type Cluster interface {
	Info(ctx context.Context) (*elastic.ClusterInfo, error)
	Addresses() []elastic.ServerAddress
	Closed() bool
}

// HealthStatus is the /health payload
type HealthStatus struct {
	Healthy     bool     `json:"healthy"`
	ClusterName string   `json:"cluster_name,omitempty"`
	Version     string   `json:"version,omitempty"`
	Nodes       []string `json:"nodes"`
	Error       string   `json:"error,omitempty"`
}

// API represents the API
type API struct {
	cluster Cluster
	timeout time.Duration
	logger  *zap.Logger
}

// NewAPI creates new API
func NewAPI(cluster Cluster, timeout time.Duration, logger *zap.Logger) *API {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &API{
		cluster: cluster,
		timeout: timeout,
		logger:  logger,
	}
}

// RegisterRoutes registers API routes
func (api *API) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", api.healthCheck)
	r.GET("/cluster", api.clusterInfo)
	r.GET("/version", api.version)
}

// healthCheck handles health check requests
func (api *API) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), api.timeout)
	defer cancel()

	status := HealthStatus{}
	for _, addr := range api.cluster.Addresses() {
		status.Nodes = append(status.Nodes, addr.String())
	}

	resp := response.New(c, api.logger)

	if api.cluster.Closed() {
		status.Error = elastic.ErrClosed.Error()
		resp.ErrorWithData(http.StatusServiceUnavailable, elastic.ErrClosed, status)
		return
	}

	info, err := api.cluster.Info(ctx)
	if err != nil {
		api.logger.Warn("Elasticsearch health check failed", zap.Error(err))
		status.Error = err.Error()
		resp.ErrorWithData(http.StatusServiceUnavailable, err, status)
		return
	}

	status.Healthy = true
	status.ClusterName = info.ClusterName
	status.Version = info.Version.Number
	resp.Success(status)
}

// clusterInfo returns the cluster root endpoint
func (api *API) clusterInfo(c *gin.Context) {
	resp := response.New(c, api.logger)

	ctx, cancel := context.WithTimeout(c.Request.Context(), api.timeout)
	defer cancel()

	info, err := api.cluster.Info(ctx)
	switch {
	case errors.Is(err, elastic.ErrClosed):
		resp.ServiceUnavailable(err)
		return
	case err != nil:
		resp.BadGateway(err)
		return
	}

	resp.Success(info)
}

func (api *API) version(c *gin.Context) {
	response.New(c, api.logger).Success(version.GetInfo())
}
