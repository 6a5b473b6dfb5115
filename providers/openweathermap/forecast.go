package openweathermap

import (
	"context"
	"time"

	"weather-lookup/models"
)

// forecastResponse is the subset of the 5 day / 3 hour forecast payload we use
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"` // Timestamp
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast fetches the 3-hour forecast feed in provider order
func (p *Provider) Forecast(ctx context.Context, coords models.Coordinates) ([]models.ForecastSample, error) {
	var response forecastResponse
	if err := p.get(ctx, "forecast", forecastEndpoint, coordParams(coords), &response); err != nil {
		return nil, err
	}

	samples := make([]models.ForecastSample, 0, len(response.List))
	for _, item := range response.List {
		sample := models.ForecastSample{
			Timestamp: time.Unix(item.Dt, 0),
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
		}
		if len(item.Weather) > 0 {
			sample.Description = item.Weather[0].Description
			sample.Icon = item.Weather[0].Icon
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
