package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/rachellcoder/weather-app/internal/domain"
)

// RateLimitedProvider wraps a WeatherProvider with one shared limiter for
// both endpoints, since the provider counts them against the same key
type RateLimitedProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
	maxWait  time.Duration
}

// Ensure RateLimitedProvider implements domain.WeatherProvider
var _ domain.WeatherProvider = (*RateLimitedProvider)(nil)

// NewRateLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second (may be fractional), burst the
// maximum burst size. A call gives up when no token is available within
// maxWait (DefaultTimeout when zero).
func NewRateLimitedProvider(provider WeatherProvider, rps float64, burst int, maxWait time.Duration) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	if maxWait <= 0 {
		maxWait = DefaultTimeout
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		maxWait:  maxWait,
	}
}

// wait blocks until a token is available or maxWait elapses
func (r *RateLimitedProvider) wait(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.maxWait)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("weather: rate limit wait canceled: %w", err)
	}
	return nil
}

// CurrentWeather waits for the limiter, then forwards to the provider
func (r *RateLimitedProvider) CurrentWeather(ctx context.Context, city string) (domain.Weather, error) {
	if err := r.wait(ctx); err != nil {
		return domain.Weather{}, err
	}
	return r.provider.CurrentWeather(ctx, city)
}

// Forecast waits for the limiter, then forwards to the provider
func (r *RateLimitedProvider) Forecast(ctx context.Context, city string) ([]domain.DaySummary, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.Forecast(ctx, city)
}
