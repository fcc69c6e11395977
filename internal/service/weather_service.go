package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rachellcoder/weather-app/internal/domain"
	"github.com/rachellcoder/weather-app/pkg/utils"
)

// OpenWeatherMap endpoints
const (
	DefaultCurrentURL  = "https://api.openweathermap.org/data/2.5/weather"
	DefaultForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// DefaultTimeout bounds each outbound call
const DefaultTimeout = 10 * time.Second

// WeatherConfig holds the credential and endpoints of the provider
type WeatherConfig struct {
	APIKey      string
	CurrentURL  string
	ForecastURL string
	Timeout     time.Duration
}

// WeatherService handles weather data fetching
type WeatherService struct {
	cfg        WeatherConfig
	httpClient *http.Client
}

// Ensure WeatherService implements domain.WeatherProvider
var _ domain.WeatherProvider = (*WeatherService)(nil)

// NewWeatherService creates a new weather service
func NewWeatherService(cfg WeatherConfig) *WeatherService {
	if cfg.CurrentURL == "" {
		cfg.CurrentURL = DefaultCurrentURL
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = DefaultForecastURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &WeatherService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// OpenWeatherResponse represents the OpenWeatherMap current weather response
type OpenWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// CurrentWeather fetches current conditions for a city
func (s *WeatherService) CurrentWeather(ctx context.Context, city string) (domain.Weather, error) {
	var owResp OpenWeatherResponse
	if err := s.get(ctx, s.cfg.CurrentURL, city, "Unknown error", &owResp); err != nil {
		return domain.Weather{}, err
	}

	if len(owResp.Weather) == 0 {
		return domain.Weather{}, fmt.Errorf("weather: response for %q has no conditions", city)
	}

	return domain.Weather{
		City:        owResp.Name,
		Temperature: utils.RoundInt(owResp.Main.Temp),
		Description: utils.Title(owResp.Weather[0].Description),
		Humidity:    owResp.Main.Humidity,
		WindSpeed:   owResp.Wind.Speed,
		Icon:        owResp.Weather[0].Icon,
	}, nil
}

// get performs one GET against endpoint and decodes a 200 body into out.
// Any other status becomes a *domain.ProviderError carrying the provider's
// message, or fallback when the body has none.
func (s *WeatherService) get(ctx context.Context, endpoint, city, fallback string, out any) error {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", s.cfg.APIKey)
	params.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("weather: failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		message := fallback
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			message = apiErr.Message
		}
		return &domain.ProviderError{Status: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("weather: failed to decode response: %w", err)
	}

	return nil
}
