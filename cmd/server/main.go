package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/rachellcoder/weather-app/internal/delivery/http"
	"github.com/rachellcoder/weather-app/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()
	if cfg.OpenWeatherAPIKey == "" {
		log.Fatal("OPENWEATHER_API_KEY is not set")
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(service.WeatherConfig{
		APIKey:      cfg.OpenWeatherAPIKey,
		CurrentURL:  cfg.CurrentURL,
		ForecastURL: cfg.ForecastURL,
	})

	var provider service.WeatherProvider = weatherSvc
	if cfg.RateLimit > 0 {
		provider = service.NewRateLimitedProvider(weatherSvc, cfg.RateLimit, cfg.RateBurst, service.DefaultTimeout)
		log.Printf("Provider rate limit: %.2f req/s, burst %d", cfg.RateLimit, cfg.RateBurst)
	}
	lookupSvc := service.NewLookupService(provider)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Weather App v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		Views:        http.NewViews(),
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// Routes
	http.SetupRoutes(app, lookupSvc)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

type Config struct {
	OpenWeatherAPIKey string
	CurrentURL        string
	ForecastURL       string
	RateLimit         float64
	RateBurst         int
	Port              string
	Env               string
}

func loadConfig() *Config {
	return &Config{
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		CurrentURL:        getEnv("OPENWEATHER_CURRENT_URL", service.DefaultCurrentURL),
		ForecastURL:       getEnv("OPENWEATHER_FORECAST_URL", service.DefaultForecastURL),
		RateLimit:         getEnvFloat("PROVIDER_RATE_LIMIT", 0),
		RateBurst:         getEnvInt("PROVIDER_RATE_BURST", 5),
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		log.Printf("Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
