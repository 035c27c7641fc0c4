package elastic

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// ServerAddress is one cluster node
type ServerAddress struct {
	Host string
	Port int
}

// String returns host:port
func (a ServerAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// URL returns the node URL for the given scheme
func (a ServerAddress) URL(scheme string) *url.URL {
	return &url.URL{Scheme: scheme, Host: a.String()}
}

// ParseServers parses "host1:port1,host2:port2". Whitespace around an entry is ignored,
// whitespace inside the host or port is not. Any malformed entry fails the whole list.
func ParseServers(servers string) ([]ServerAddress, error) {
	entries := strings.Split(servers, ",")
	addrs := make([]ServerAddress, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)

		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "expected host:port"}
		}

		host, port := parts[0], parts[1]
		if host == "" {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "empty host"}
		}
		if port == "" {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "empty port"}
		}
		if strings.ContainsFunc(host, unicode.IsSpace) {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "whitespace in host"}
		}
		if strings.ContainsFunc(port, unicode.IsSpace) {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "whitespace in port"}
		}

		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "port is not a number", Err: err}
		}
		if p <= 0 || p > 65535 {
			return nil, &ConfigurationError{Servers: servers, Entry: entry, Reason: "port out of range"}
		}

		addrs = append(addrs, ServerAddress{Host: host, Port: p})
	}

	return addrs, nil
}
