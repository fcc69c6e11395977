package service

import (
	"sort"
	"time"

	"github.com/rachellcoder/weather-app/internal/domain"
	"github.com/rachellcoder/weather-app/pkg/utils"
)

const dateLayout = "2006-01-02"

// labelCount tracks how often a description/icon pair was seen
type labelCount struct {
	description string
	icon        string
	count       int
}

// dayGroup accumulates the samples of one calendar date
type dayGroup struct {
	first  time.Time
	temps  []float64
	labels []labelCount // insertion order
}

func (g *dayGroup) add(s domain.Sample) {
	g.temps = append(g.temps, s.Temperature)

	for i := range g.labels {
		if g.labels[i].description == s.Description && g.labels[i].icon == s.Icon {
			g.labels[i].count++
			return
		}
	}
	g.labels = append(g.labels, labelCount{description: s.Description, icon: s.Icon, count: 1})
}

// dominant returns the most frequent label; on a tie the first seen wins
func (g *dayGroup) dominant() labelCount {
	best := g.labels[0]
	for _, l := range g.labels[1:] {
		if l.count > best.count {
			best = l
		}
	}
	return best
}

func (g *dayGroup) summary() domain.DaySummary {
	lo, hi := utils.MinMax(g.temps)
	label := g.dominant()
	day := g.first.UTC()

	return domain.DaySummary{
		Weekday:     day.Format("Mon"),
		Date:        day.Format("Jan 02"),
		Min:         utils.RoundInt(lo),
		Max:         utils.RoundInt(hi),
		Description: utils.Title(label.description),
		Icon:        label.icon,
	}
}

// sampleDateKey returns the "YYYY-MM-DD" bucket of a sample
func sampleDateKey(s domain.Sample) string {
	if s.DateKey != "" {
		return s.DateKey
	}
	return s.Timestamp.UTC().Format(dateLayout)
}

// AggregateForecast groups samples by calendar date and reduces each of the
// earliest domain.MaxForecastDays dates to a DaySummary, ascending by date
func AggregateForecast(samples []domain.Sample) []domain.DaySummary {
	groups := make(map[string]*dayGroup)
	for _, s := range samples {
		key := sampleDateKey(s)
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{first: s.Timestamp}
			groups[key] = g
		}
		g.add(s)
	}

	// "YYYY-MM-DD" sorts chronologically as a plain string
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > domain.MaxForecastDays {
		keys = keys[:domain.MaxForecastDays]
	}

	days := make([]domain.DaySummary, 0, len(keys))
	for _, key := range keys {
		days = append(days, groups[key].summary())
	}

	return days
}
