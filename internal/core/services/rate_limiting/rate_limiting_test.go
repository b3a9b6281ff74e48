package ratelimiting

import (
	"billmind/internal/core/domain/logging"
	ratelimiter "billmind/internal/core/domain/rate_limiter"
	"billmind/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type input struct {
	Value string
}

func (i input) GetRateLimitKey() string {
	return "test-rate-limiting-key::" + i.Value
}

type result struct{}

type stubService struct {
	WasCalled bool
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	return result, nil
}

func TestInnerServiceCalledIfRateLimitNotExceeded(t *testing.T) {
	inner := &stubService{}
	service := WithRateLimiting[input, result](
		logging.NewFakeLogger(),
		ratelimiter.NewFakeRateLimiter(true),
		ratelimiter.Limit{Value: 5, Interval: ratelimiter.Minute},
		inner,
	)

	_, err := service.Run(context.Background(), input{Value: "abc"})

	require.NoError(t, err)
	require.True(t, inner.WasCalled)
}

func TestErrorReturnedIfRateLimitExceeded(t *testing.T) {
	inner := &stubService{}
	limiter := ratelimiter.NewFakeRateLimiter(false)
	service := WithRateLimiting[input, result](
		logging.NewFakeLogger(),
		limiter,
		ratelimiter.Limit{Value: 5, Interval: ratelimiter.Minute},
		inner,
	)

	_, err := service.Run(context.Background(), input{Value: "abc"})

	require.ErrorIs(t, err, ratelimiter.ErrRateLimitExceeded)
	require.False(t, inner.WasCalled)
	require.Equal(t, []string{"test-rate-limiting-key::abc"}, limiter.CheckedKeys)
}
