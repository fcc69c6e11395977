package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rachellcoder/weather-app/internal/domain"
)

// OpenWeatherForecastResponse represents the 5 day / 3 hour forecast response
type OpenWeatherForecastResponse struct {
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"` // "2006-01-02 15:04:05", UTC
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast fetches the 3-hourly forecast for a city and condenses it into
// at most domain.MaxForecastDays daily summaries
func (s *WeatherService) Forecast(ctx context.Context, city string) ([]domain.DaySummary, error) {
	var fResp OpenWeatherForecastResponse
	if err := s.get(ctx, s.cfg.ForecastURL, city, "Forecast error", &fResp); err != nil {
		return nil, err
	}

	samples := make([]domain.Sample, 0, len(fResp.List))
	for i, item := range fResp.List {
		if len(item.Weather) == 0 {
			return nil, fmt.Errorf("weather: forecast entry %d for %q has no conditions", i, city)
		}
		day, _, _ := strings.Cut(item.DtTxt, " ")
		samples = append(samples, domain.Sample{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			DateKey:     day,
			Temperature: item.Main.Temp,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
		})
	}

	return AggregateForecast(samples), nil
}
