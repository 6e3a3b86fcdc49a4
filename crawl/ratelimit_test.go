package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements doccrawl.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ doccrawl.DomainLimiter = crawl.NewDomainLimiter(time.Second)
	})

	t.Run("first request to a host is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(time.Second)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces requests to the same host by the delay", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100 * time.Millisecond)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("waits the full delay after a slow request", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100 * time.Millisecond)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		time.Sleep(150 * time.Millisecond)
		limiter.Done("example.com")

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("done on a new host throttles its first request", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100 * time.Millisecond)
		limiter.Done("example.com")

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("done with zero delay never waits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)
		limiter.Done("example.com")

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("hosts have independent buckets", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(time.Second)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "other.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero delay never waits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)

		start := time.Now()
		for range 10 {
			require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(time.Second)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})
}
