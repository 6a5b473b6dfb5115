// Package forecast reduces a 3-hour forecast feed to one representative sample per day.
package forecast

import (
	"sort"
	"time"

	"weather-lookup/models"
)

const (
	// MaxDays is the number of future days kept
	MaxDays = 5

	// MiddayStart and MiddayEnd bound the preferred local hours, inclusive
	MiddayStart = 12
	MiddayEnd   = 15
)

// SelectDays picks one sample for each calendar day after today, earliest first, at most
// MaxDays of them. Days and hours are evaluated in today's location. Within a day the first
// sample is kept unless a later one falls in the midday window while the kept one does not.
func SelectDays(samples []models.ForecastSample, today time.Time) []models.DailyForecast {
	loc := today.Location()
	todayKey := dateOf(today)

	picks := make(map[date]models.ForecastSample)
	for _, s := range samples {
		local := s.Timestamp.In(loc)
		day := dateOf(local)
		if day == todayKey {
			continue
		}

		current, ok := picks[day]
		if !ok || (inMidday(local) && !inMidday(current.Timestamp.In(loc))) {
			picks[day] = s
		}
	}

	days := make([]models.DailyForecast, 0, len(picks))
	for day, s := range picks {
		days = append(days, models.DailyForecast{Day: day.start(loc), Sample: s})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})

	if len(days) > MaxDays {
		days = days[:MaxDays]
	}
	return days
}

// date is a calendar day with no time of day
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{y, m, d}
}

// start returns the first instant of the day in loc. Where a DST jump skips midnight,
// time.Date normalizes into the previous day, so step forward until the date matches.
func (d date) start(loc *time.Location) time.Time {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
	for dateOf(t) != d {
		t = t.Add(time.Hour)
	}
	return t
}

func inMidday(t time.Time) bool {
	h := t.Hour()
	return h >= MiddayStart && h <= MiddayEnd
}
