package domain

import (
	"context"
	"fmt"
)

// ProviderError is a non-200 answer from the weather provider
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather: provider returned %d: %s", e.Status, e.Message)
}

// WeatherProvider defines the interface for fetching weather data
// The domain defines the contract, the service layer implements it
type WeatherProvider interface {
	// CurrentWeather fetches current conditions for a city
	CurrentWeather(ctx context.Context, city string) (Weather, error)

	// Forecast fetches and aggregates the multi-day forecast for a city
	Forecast(ctx context.Context, city string) ([]DaySummary, error)
}
