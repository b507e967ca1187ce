package retry

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"

	pkghttp "github.com/glucoin/glucoin-ai/pkg/http"
)

type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"DELAY" envDefault:"100ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
	}
}

// Do runs op with the configured backoff. Client errors (4xx) are never
// retried; network failures and 5xx responses are.
func Do(ctx context.Context, cfg *RetryConfig, op func() error) error {
	opts := append(cfg.ToRetryOptions(),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)
	return retry.Do(op, opts...)
}

func isRetryable(err error) bool {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
