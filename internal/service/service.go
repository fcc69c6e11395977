package service

import (
	"github.com/rachellcoder/weather-app/internal/domain"
)

// WeatherProvider is re-exported from domain for convenience
type WeatherProvider = domain.WeatherProvider
