package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/rachellcoder/weather-app/internal/domain"
	"github.com/rachellcoder/weather-app/internal/service"
)

type stubProvider struct {
	weatherErr  error
	forecastErr error
	days        []domain.DaySummary
	calls       int
}

func (s *stubProvider) CurrentWeather(ctx context.Context, city string) (domain.Weather, error) {
	s.calls++
	if s.weatherErr != nil {
		return domain.Weather{}, s.weatherErr
	}
	return domain.Weather{City: city, Temperature: 72, Description: "Few Clouds", Humidity: 23, WindSpeed: 9.2, Icon: "02d"}, nil
}

func (s *stubProvider) Forecast(ctx context.Context, city string) ([]domain.DaySummary, error) {
	s.calls++
	if s.forecastErr != nil {
		return nil, s.forecastErr
	}
	if s.days != nil {
		return s.days, nil
	}
	return []domain.DaySummary{
		{Weekday: "Fri", Date: "Mar 01", Min: 50, Max: 60, Description: "Clear Sky", Icon: "01d"},
		{Weekday: "Sat", Date: "Mar 02", Min: 48, Max: 58, Description: "Light Rain", Icon: "10d"},
	}, nil
}

func newTestApp(p service.WeatherProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        NewViews(),
		ErrorHandler: ErrorHandler,
	})
	SetupRoutes(app, service.NewLookupService(p))
	return app
}

func postCity(t *testing.T, app *fiber.App, city string) (int, string) {
	t.Helper()

	form := url.Values{"city": {city}}
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *nethttp.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexRendersForm(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/", nil))
	if status != nethttp.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, `name="city"`) {
		t.Fatal("form field missing from page")
	}
}

func TestSearchEmptyCity(t *testing.T) {
	stub := &stubProvider{}
	app := newTestApp(stub)

	status, body := postCity(t, app, "   ")
	if status != nethttp.StatusBadRequest {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, "Please enter a city.") {
		t.Fatal("missing empty city message")
	}
	if stub.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", stub.calls)
	}
}

func TestSearchRendersWeatherAndForecast(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, body := postCity(t, app, "Denver")
	if status != nethttp.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	for _, want := range []string{`value="Denver"`, "Few Clouds", "Humidity 23%", "Mar 01", "Clear Sky", "Light Rain"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSearchCurrentWeatherError(t *testing.T) {
	stub := &stubProvider{weatherErr: &domain.ProviderError{Status: 404, Message: "city not found"}}
	app := newTestApp(stub)

	status, body := postCity(t, app, "Atlantis")
	if status != nethttp.StatusNotFound {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, "Current weather error (404): city not found") {
		t.Fatal("missing provider error message")
	}
	if !strings.Contains(body, `value="Atlantis"`) {
		t.Fatal("submitted city not kept in form")
	}
	if stub.calls != 1 {
		t.Fatalf("expected only the current weather call, got %d", stub.calls)
	}
}

func TestSearchForecastErrorHidesWeather(t *testing.T) {
	app := newTestApp(&stubProvider{forecastErr: &domain.ProviderError{Status: 500, Message: "boom"}})

	_, body := postCity(t, app, "Denver")
	if !strings.Contains(body, "Forecast error (500): boom") {
		t.Fatal("missing forecast error message")
	}
	if strings.Contains(body, "Humidity") {
		t.Fatal("current weather must not be shown when the forecast fails")
	}
}

func TestGetWeatherJSON(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/weather?city=Denver", nil))
	if status != nethttp.StatusOK {
		t.Fatalf("unexpected status %d: %s", status, body)
	}

	var resp struct {
		Success bool          `json:"success"`
		Data    domain.Report `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.Success || resp.Data.Weather == nil || len(resp.Data.Forecast) != 2 {
		t.Fatalf("unexpected response %s", body)
	}
}

func TestGetWeatherJSONError(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/weather", nil))
	if status != nethttp.StatusBadRequest {
		t.Fatalf("unexpected status %d", status)
	}

	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.Error || resp.Message != "Please enter a city." {
		t.Fatalf("unexpected response %s", body)
	}
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(&stubProvider{})

	status, _ := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/health", nil))
	if status != nethttp.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
}

func TestGetWeatherJSONKeepsEmptyForecast(t *testing.T) {
	app := newTestApp(&stubProvider{days: []domain.DaySummary{}})

	status, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/weather?city=Denver", nil))
	if status != nethttp.StatusOK {
		t.Fatalf("unexpected status %d: %s", status, body)
	}
	if !strings.Contains(body, `"forecast":[]`) {
		t.Fatalf("expected an empty forecast array, got %s", body)
	}
}
