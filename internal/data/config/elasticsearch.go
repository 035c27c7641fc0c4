package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultScheme          = "http"
	DefaultMaxRetryTimeout = 30 * time.Second
	DefaultSocketTimeout   = 30 * time.Second
	DefaultDialTimeout     = time.Second
	DefaultMaxRetries      = 3
	DefaultMaxIdlePerHost  = 10
)

// Elasticsearch elasticsearch config struct
type Elasticsearch struct {
	// Servers is a comma separated host:port list, e.g. "es1:9200,es2:9200"
	Servers  string `mapstructure:"servers" validate:"required"`
	Scheme   string `mapstructure:"scheme" validate:"oneof=http https"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// MaxRetryTimeout bounds one logical request across all of its attempts
	MaxRetryTimeout time.Duration `mapstructure:"max_retry_timeout" validate:"gte=0"`
	// SocketTimeout bounds the wait for a response on an established connection
	SocketTimeout time.Duration `mapstructure:"socket_timeout" validate:"gte=0"`
	DialTimeout   time.Duration `mapstructure:"dial_timeout" validate:"gte=0"`

	MaxRetries          int   `mapstructure:"max_retries" validate:"gte=0"`
	RetryOnStatus       []int `mapstructure:"retry_on_status" validate:"dive,gte=100,lte=599"`
	MaxIdleConnsPerHost int   `mapstructure:"max_idle_conns_per_host" validate:"gte=0"`
	CompressRequestBody bool  `mapstructure:"compress_request_body"`
	HealthCheck         bool  `mapstructure:"health_check"`
	LogRequests         bool  `mapstructure:"log_requests"`
}

// DefaultElasticsearch returns elasticsearch config with default timeouts
func DefaultElasticsearch() *Elasticsearch {
	return &Elasticsearch{
		Scheme:              DefaultScheme,
		MaxRetryTimeout:     DefaultMaxRetryTimeout,
		SocketTimeout:       DefaultSocketTimeout,
		DialTimeout:         DefaultDialTimeout,
		MaxRetries:          DefaultMaxRetries,
		MaxIdleConnsPerHost: DefaultMaxIdlePerHost,
		HealthCheck:         true,
	}
}

// setElasticsearchDefaults registers defaults so env overrides are visible to viper
func setElasticsearchDefaults(v *viper.Viper) {
	d := DefaultElasticsearch()
	v.SetDefault("data.elasticsearch.servers", "")
	v.SetDefault("data.elasticsearch.scheme", d.Scheme)
	v.SetDefault("data.elasticsearch.username", "")
	v.SetDefault("data.elasticsearch.password", "")
	v.SetDefault("data.elasticsearch.max_retry_timeout", d.MaxRetryTimeout)
	v.SetDefault("data.elasticsearch.max_retry_timeout_millis", 0)
	v.SetDefault("data.elasticsearch.socket_timeout", d.SocketTimeout)
	v.SetDefault("data.elasticsearch.socket_timeout_millis", 0)
	v.SetDefault("data.elasticsearch.dial_timeout", d.DialTimeout)
	v.SetDefault("data.elasticsearch.max_retries", d.MaxRetries)
	v.SetDefault("data.elasticsearch.max_idle_conns_per_host", d.MaxIdleConnsPerHost)
	v.SetDefault("data.elasticsearch.compress_request_body", false)
	v.SetDefault("data.elasticsearch.health_check", d.HealthCheck)
	v.SetDefault("data.elasticsearch.log_requests", false)
}

// getElasticsearchConfigs reads Elasticsearch configurations
func getElasticsearchConfigs(v *viper.Viper) *Elasticsearch {
	cfg := &Elasticsearch{
		Servers:             v.GetString("data.elasticsearch.servers"),
		Scheme:              v.GetString("data.elasticsearch.scheme"),
		Username:            v.GetString("data.elasticsearch.username"),
		Password:            v.GetString("data.elasticsearch.password"),
		MaxRetryTimeout:     v.GetDuration("data.elasticsearch.max_retry_timeout"),
		SocketTimeout:       v.GetDuration("data.elasticsearch.socket_timeout"),
		DialTimeout:         v.GetDuration("data.elasticsearch.dial_timeout"),
		MaxRetries:          v.GetInt("data.elasticsearch.max_retries"),
		RetryOnStatus:       v.GetIntSlice("data.elasticsearch.retry_on_status"),
		MaxIdleConnsPerHost: v.GetInt("data.elasticsearch.max_idle_conns_per_host"),
		CompressRequestBody: v.GetBool("data.elasticsearch.compress_request_body"),
		HealthCheck:         v.GetBool("data.elasticsearch.health_check"),
		LogRequests:         v.GetBool("data.elasticsearch.log_requests"),
	}

	// millisecond keys win over the duration keys when set
	if ms := v.GetInt64("data.elasticsearch.max_retry_timeout_millis"); ms > 0 {
		cfg.MaxRetryTimeout = time.Duration(ms) * time.Millisecond
	}
	if ms := v.GetInt64("data.elasticsearch.socket_timeout_millis"); ms > 0 {
		cfg.SocketTimeout = time.Duration(ms) * time.Millisecond
	}

	return cfg
}
