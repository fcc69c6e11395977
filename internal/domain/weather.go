package domain

import "time"

// MaxForecastDays caps the number of daily summaries in a forecast
const MaxForecastDays = 5

// Weather represents current conditions for a city
type Weather struct {
	City        string  `json:"city"`
	Temperature int     `json:"temp"`
	Description string  `json:"desc"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind"`
	Icon        string  `json:"icon"`
}

// Sample is one 3-hour forecast data point
type Sample struct {
	Timestamp   time.Time
	DateKey     string // "YYYY-MM-DD"
	Temperature float64
	Description string
	Icon        string
}

// DaySummary condenses all samples of one calendar day
type DaySummary struct {
	Weekday     string `json:"day"`
	Date        string `json:"date"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
}

// Report is the outcome of a single city lookup, ready for display
type Report struct {
	City     string       `json:"city"`
	Weather  *Weather     `json:"weather,omitempty"`
	Forecast []DaySummary `json:"forecast"`
	Error    string       `json:"error,omitempty"`
	Code     int          `json:"-"`
}

// OK reports whether the lookup produced displayable data
func (r Report) OK() bool {
	return r.Error == ""
}
