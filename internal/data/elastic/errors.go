package elastic

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("elasticsearch configuration error")
	ErrConnection    = errors.New("elasticsearch connection error")
	ErrClosed        = errors.New("elasticsearch client is closed")
)

// ConfigurationError reports a malformed servers entry
type ConfigurationError struct {
	Servers string
	Entry   string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("can not parse es servers %q: entry %q: %s", e.Servers, e.Entry, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrConfiguration) match
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
