package models

import (
	"time"
)

// ForecastSample represents a single 3-hour forecast point
type ForecastSample struct {
	Timestamp   time.Time `json:"timestamp"`   // time this sample is for
	TempMin     float64   `json:"tempMin"`     // in Celsius
	TempMax     float64   `json:"tempMax"`     // in Celsius
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // provider icon code
}

// DailyForecast is the representative sample chosen for one calendar day
type DailyForecast struct {
	Day    time.Time      `json:"day"` // midnight of the calendar day
	Sample ForecastSample `json:"sample"`
}
