package elastic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServers(t *testing.T) {
	tests := []struct {
		name    string
		servers string
		want    []ServerAddress
		reason  string
	}{
		{
			name:    "two nodes",
			servers: "es1:9200,es2:9200",
			want:    []ServerAddress{{Host: "es1", Port: 9200}, {Host: "es2", Port: 9200}},
		},
		{
			name:    "single node",
			servers: "localhost:9201",
			want:    []ServerAddress{{Host: "localhost", Port: 9201}},
		},
		{
			name:    "spaces around entries",
			servers: " es1:9200 , 10.0.0.2:9300",
			want:    []ServerAddress{{Host: "es1", Port: 9200}, {Host: "10.0.0.2", Port: 9300}},
		},
		{name: "non numeric port", servers: "es1:abc", reason: "port is not a number"},
		{name: "missing colon", servers: "es1", reason: "expected host:port"},
		{name: "empty host", servers: ":9200", reason: "empty host"},
		{name: "empty port", servers: "es1:", reason: "empty port"},
		{name: "too many colons", servers: "es1:9200:1", reason: "expected host:port"},
		{name: "empty string", servers: "", reason: "expected host:port"},
		{name: "trailing comma", servers: "es1:9200,", reason: "expected host:port"},
		{name: "space before colon", servers: "es1 :9200", reason: "whitespace in host"},
		{name: "space inside host", servers: "es 1:9200", reason: "whitespace in host"},
		{name: "space after colon", servers: "es1: 9200", reason: "whitespace in port"},
		{name: "tab in second entry", servers: "es1:9200,es2\t:9200", reason: "whitespace in host"},
		{name: "zero port", servers: "es1:0", reason: "port out of range"},
		{name: "negative port", servers: "es1:-1", reason: "port out of range"},
		{name: "port too large", servers: "es1:70000", reason: "port out of range"},
		{name: "one bad entry fails all", servers: "es1:9200,es2", reason: "expected host:port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServers(tt.servers)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
			assert.Equal(t, tt.servers, cfgErr.Servers)
		})
	}
}

func TestServerAddressURL(t *testing.T) {
	addr := ServerAddress{Host: "es1", Port: 9200}
	assert.Equal(t, "es1:9200", addr.String())
	assert.Equal(t, "https://es1:9200", addr.URL("https").String())
}
