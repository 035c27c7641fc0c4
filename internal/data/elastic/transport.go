package elastic

import (
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elastic/elastic-transport-go/v8/elastictransport"
	"go.uber.org/zap"
)

// boundedTransport caps the total time of one logical request, retries included,
// and refuses requests once closed.
type boundedTransport struct {
	next   elastictransport.Interface
	budget time.Duration
	closed atomic.Bool
}

// Perform implements elastictransport.Interface
func (t *boundedTransport) Perform(req *http.Request) (*http.Response, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}
	if t.budget <= 0 {
		return t.next.Perform(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), t.budget)
	res, err := t.next.Perform(req.WithContext(ctx))
	if err != nil || res == nil || res.Body == nil {
		cancel()
		return res, err
	}

	// the deadline has to outlive Perform until the caller drains the body
	res.Body = &cancelOnClose{ReadCloser: res.Body, cancel: cancel}
	return res, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
	once   sync.Once
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.cancel)
	return err
}

// zapTransportLogger logs transport round trips through zap
type zapTransportLogger struct {
	logger *zap.Logger
}

// LogRoundTrip implements elastictransport.Logger
func (l *zapTransportLogger) LogRoundTrip(req *http.Request, res *http.Response, err error, start time.Time, dur time.Duration) error {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Time("start", start),
		zap.Duration("duration", dur),
	}
	if res != nil {
		fields = append(fields, zap.Int("status", res.StatusCode))
	}

	if err != nil {
		l.logger.Warn("es request failed", append(fields, zap.Error(err))...)
		return nil
	}

	l.logger.Debug("es request", fields...)
	return nil
}

func (l *zapTransportLogger) RequestBodyEnabled() bool  { return false }
func (l *zapTransportLogger) ResponseBodyEnabled() bool { return false }
