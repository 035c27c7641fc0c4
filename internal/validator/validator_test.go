package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Servers string        `mapstructure:"servers" validate:"required"`
	Scheme  string        `mapstructure:"scheme" validate:"oneof=http https"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Codes   []int         `mapstructure:"codes" validate:"dive,gte=100,lte=599"`
}

func TestStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(&sample{Servers: "es1:9200", Scheme: "http", Codes: []int{502}}))

	err := v.Struct(&sample{Scheme: "ftp", Timeout: -time.Second, Codes: []int{42}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.servers is required")
	assert.Contains(t, err.Error(), "sample.scheme must be one of [http https]")
	assert.Contains(t, err.Error(), "sample.timeout must be at least 0")
	assert.Contains(t, err.Error(), "sample.codes[0] must be at least 100")
}

func TestStructInvalidInput(t *testing.T) {
	err := New().Struct("not a struct")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid validation error")
}
