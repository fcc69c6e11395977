package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rachellcoder/weather-app/internal/domain"
)

// MsgEmptyCity is shown when the form is submitted without a city
const MsgEmptyCity = "Please enter a city."

// LookupService combines current conditions and forecast for one city
type LookupService struct {
	provider WeatherProvider
}

// NewLookupService creates a new lookup service
func NewLookupService(provider WeatherProvider) *LookupService {
	return &LookupService{provider: provider}
}

// Lookup fetches current weather, then the forecast, strictly in that order.
// The forecast is only requested when current weather succeeded, and a
// forecast failure drops the current weather from the report.
func (s *LookupService) Lookup(ctx context.Context, city string) domain.Report {
	report := domain.Report{City: strings.TrimSpace(city)}

	if report.City == "" {
		report.Error = MsgEmptyCity
		report.Code = http.StatusBadRequest
		return report
	}

	weather, err := s.provider.CurrentWeather(ctx, report.City)
	if err != nil {
		return failed(report, "Current weather error", err)
	}

	forecast, err := s.provider.Forecast(ctx, report.City)
	if err != nil {
		return failed(report, "Forecast error", err)
	}

	report.Weather = &weather
	report.Forecast = forecast
	report.Code = http.StatusOK
	return report
}

// failed turns an error from the provider into a user-facing message
func failed(report domain.Report, stage string, err error) domain.Report {
	log.Printf("Lookup %q: %s: %v", report.City, stage, err)

	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		report.Error = fmt.Sprintf("%s (%d): %s", stage, provErr.Status, provErr.Message)
		report.Code = http.StatusBadGateway
		if provErr.Status == http.StatusNotFound {
			report.Code = http.StatusNotFound
		}
		return report
	}

	report.Error = stage + ": weather service unavailable"
	report.Code = http.StatusBadGateway
	return report
}
