package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"weather-lookup/models"
)

// NoForecastMessage replaces the forecast list when no future day is available
const NoForecastMessage = "No future forecast data available."

// Details are the current-condition readouts
type Details struct {
	FeelsLike  string `json:"feelsLike"`
	Humidity   string `json:"humidity"`
	WindSpeed  string `json:"windSpeed"`
	Pressure   string `json:"pressure"`
	Visibility string `json:"visibility"`
	UVIndex    string `json:"uvIndex"`
}

// Card is one day tile
type Card struct {
	Day         string `json:"day"`
	Temp        string `json:"temp"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// View is a report rendered to display strings
type View struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Details  Details  `json:"details"`
	Today    Card     `json:"today"`
	Forecast []Card   `json:"forecast"`
	Notice   string   `json:"notice,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Build renders r. The today card shows the current temperature on both sides of the
// range, the current endpoint's min/max being station spread rather than a daily range.
func Build(r models.WeatherReport) View {
	cur := r.Current
	v := View{
		ID:   r.ID,
		Name: r.Name,
		Details: Details{
			FeelsLike:  Temperature(cur.FeelsLike),
			Humidity:   Humidity(cur.Humidity),
			WindSpeed:  WindSpeed(cur.WindSpeed),
			Pressure:   Pressure(cur.Pressure),
			Visibility: Visibility(cur.Visibility),
			UVIndex:    UVUnavailable,
		},
		Today: Card{
			Day:         DayName(r.FetchedAt),
			Temp:        TempRange(cur.Temp, cur.Temp),
			Description: cur.Description,
			Icon:        cur.Icon,
			IconURL:     IconURL(cur.Icon),
		},
		Forecast: make([]Card, 0, len(r.Days)),
		Warnings: r.Warnings,
	}

	for _, d := range r.Days {
		v.Forecast = append(v.Forecast, Card{
			Day:         DayName(d.Day),
			Temp:        TempRange(d.Sample.TempMin, d.Sample.TempMax),
			Description: d.Sample.Description,
			Icon:        d.Sample.Icon,
			IconURL:     IconURL(d.Sample.Icon),
		})
	}
	if len(v.Forecast) == 0 {
		v.Notice = NoForecastMessage
	}
	return v
}

// WriteText prints v as an aligned plain-text block
func WriteText(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", v.Name)
	fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Today.Day, v.Today.Temp, v.Today.Description)
	fmt.Fprintf(tw, "  Feels like\t%s\n", v.Details.FeelsLike)
	fmt.Fprintf(tw, "  Humidity\t%s\n", v.Details.Humidity)
	fmt.Fprintf(tw, "  Wind\t%s\n", v.Details.WindSpeed)
	fmt.Fprintf(tw, "  Pressure\t%s\n", v.Details.Pressure)
	fmt.Fprintf(tw, "  Visibility\t%s\n", v.Details.Visibility)
	fmt.Fprintf(tw, "  UV index\t%s\n", v.Details.UVIndex)
	for _, c := range v.Forecast {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Day, c.Temp, c.Description)
	}
	if v.Notice != "" {
		fmt.Fprintf(tw, "  %s\n", v.Notice)
	}
	for _, warning := range v.Warnings {
		fmt.Fprintf(tw, "  ! %s\n", warning)
	}
	return tw.Flush()
}
