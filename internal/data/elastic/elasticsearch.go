package elastic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"esconnector/internal/data/config"

	"github.com/elastic/elastic-transport-go/v8/elastictransport"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// SearchResponse represents the response from an Elasticsearch search query.
type SearchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// ClusterInfo is the root endpoint response of a cluster node
type ClusterInfo struct {
	Name        string `json:"name"`
	ClusterName string `json:"cluster_name"`
	ClusterUUID string `json:"cluster_uuid"`
	Version     struct {
		Number        string `json:"number"`
		LuceneVersion string `json:"lucene_version"`
	} `json:"version"`
	Tagline string `json:"tagline"`
}

// Client is the shared, authenticated handle to the cluster.
// It is safe for concurrent use and must be closed exactly once.
type Client struct {
	api       *esapi.API
	transport *boundedTransport
	http      *http.Transport
	addrs     []ServerAddress
}

// NewClient builds a client for every node in cfg.Servers
func NewClient(cfg *config.Elasticsearch, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, &ConfigurationError{Reason: "elasticsearch configuration is nil"}
	}

	addrs, err := ParseServers(cfg.Servers)
	if err != nil {
		return nil, err
	}

	scheme := cfg.Scheme
	if scheme == "" {
		scheme = config.DefaultScheme
	}
	urls := make([]*url.URL, 0, len(addrs))
	for _, addr := range addrs {
		urls = append(urls, addr.URL(scheme))
	}

	ht := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: cfg.SocketTimeout,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	tcfg := elastictransport.Config{
		URLs:                urls,
		Username:            cfg.Username,
		Password:            cfg.Password,
		Transport:           ht,
		RetryOnStatus:       cfg.RetryOnStatus,
		MaxRetries:          cfg.MaxRetries,
		DisableRetry:        cfg.MaxRetries == 0,
		CompressRequestBody: cfg.CompressRequestBody,
	}
	if cfg.LogRequests && logger != nil {
		tcfg.Logger = &zapTransportLogger{logger: logger.Named("transport")}
	}

	tp, err := elastictransport.New(tcfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client creation error: %w", err)
	}

	bt := &boundedTransport{next: tp, budget: cfg.MaxRetryTimeout}

	return &Client{
		api:       esapi.New(bt),
		transport: bt,
		http:      ht,
		addrs:     addrs,
	}, nil
}

// API returns the request API bound to this client
func (c *Client) API() *esapi.API {
	return c.api
}

// Transport returns the low-level transport for raw HTTP requests.
// Request URLs are relative; the transport picks the node.
func (c *Client) Transport() elastictransport.Interface {
	return c.transport
}

// Addresses returns the configured nodes
func (c *Client) Addresses() []ServerAddress {
	return append([]ServerAddress(nil), c.addrs...)
}

// Closed reports whether Close has been called
func (c *Client) Closed() bool {
	return c.transport.closed.Load()
}

// Info fetches cluster information from any node
func (c *Client) Info(ctx context.Context) (*ClusterInfo, error) {
	res, err := c.api.Info(c.api.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info error: %w", err)
	}

	defer closeResponseBody(res.Body)

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch info error: %s", res.Status())
	}

	var info ClusterInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("error parsing the response body: %w", err)
	}

	return &info, nil
}

// Search search from Elasticsearch
func (c *Client) Search(ctx context.Context, indexName, query string) (*SearchResponse, error) {
	res, err := c.api.Search(
		c.api.Search.WithContext(ctx),
		c.api.Search.WithIndex(indexName),
		c.api.Search.WithBody(strings.NewReader(query)),
		c.api.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search error: %w", err)
	}

	defer closeResponseBody(res.Body)

	if res.IsError() {
		return nil, responseError("search", res)
	}

	var sr SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("error parsing the response body: %w", err)
	}

	return &sr, nil
}

// IndexDocument index document to Elasticsearch
func (c *Client) IndexDocument(ctx context.Context, indexName string, documentID string, document any) error {
	var b strings.Builder
	if err := json.NewEncoder(&b).Encode(document); err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: documentID,
		Body:       strings.NewReader(b.String()),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.transport)
	if err != nil {
		return fmt.Errorf("elasticsearch indexing error: %w", err)
	}

	defer closeResponseBody(res.Body)

	if res.IsError() {
		return responseError("indexing", res)
	}

	return nil
}

// DeleteDocument delete document from Elasticsearch
func (c *Client) DeleteDocument(ctx context.Context, indexName, documentID string) error {
	req := esapi.DeleteRequest{
		Index:      indexName,
		DocumentID: documentID,
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.transport)
	if err != nil {
		return fmt.Errorf("elasticsearch deletion error: %w", err)
	}

	defer closeResponseBody(res.Body)

	if res.IsError() {
		return responseError("deletion", res)
	}

	return nil
}

// Close releases pooled connections. A second call returns ErrClosed.
func (c *Client) Close(ctx context.Context) error {
	if !c.transport.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	var err error
	if cl, ok := c.transport.next.(interface{ Close(context.Context) error }); ok {
		err = cl.Close(ctx)
	}
	c.http.CloseIdleConnections()

	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

func responseError(op string, res *esapi.Response) error {
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("elasticsearch %s error: %s", op, res.Status())
	}
	return fmt.Errorf("elasticsearch %s error: %s: %v", op, res.Status(), body["error"])
}

// closeResponseBody drains and closes the body so the connection returns to the pool
func closeResponseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
