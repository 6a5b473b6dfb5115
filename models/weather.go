package models

import (
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions represents the current weather reported for a position
type CurrentConditions struct {
	Temp        float64   `json:"temp"`       // in Celsius
	FeelsLike   float64   `json:"feelsLike"`  // in Celsius
	TempMin     float64   `json:"tempMin"`    // in Celsius
	TempMax     float64   `json:"tempMax"`    // in Celsius
	Humidity    int       `json:"humidity"`   // percentage
	Pressure    int       `json:"pressure"`   // in hPa
	WindSpeed   float64   `json:"windSpeed"`  // in m/s
	Visibility  int       `json:"visibility"` // in meters
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // provider icon code, e.g. "10d"
	ObservedAt  time.Time `json:"observedAt"`
}

// WeatherReport is everything a single lookup produced, ready to be rendered
type WeatherReport struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Coordinates Coordinates       `json:"coordinates"`
	Current     CurrentConditions `json:"current"`
	Days        []DailyForecast   `json:"days"`
	Warnings    []string          `json:"warnings,omitempty"`
	FetchedAt   time.Time         `json:"fetchedAt"`
}
