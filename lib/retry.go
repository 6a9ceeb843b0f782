package lib

import (
	"context"
	"time"

	"github.com/avast/retry-go"
)

func Retry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.Attempts(10),
		retry.Delay(150*time.Millisecond),
		retry.MaxDelay(3*time.Second),
		retry.DelayType(retry.BackOffDelay),
	)
}
