// Package display turns weather reports into the strings and records a page or terminal
// shows.
package display

import (
	"fmt"
	"math"
	"time"
)

// UVUnavailable is shown for the UV index, which the current weather endpoint lacks
const UVUnavailable = "N/A"

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// Round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Temperature formats whole degrees Celsius
func Temperature(c float64) string {
	return fmt.Sprintf("%d°C", Round(c))
}

// TempRange formats a low / high pair
func TempRange(lo, hi float64) string {
	return Temperature(lo) + " / " + Temperature(hi)
}

// WindSpeed converts m/s to km/h
func WindSpeed(mps float64) string {
	return fmt.Sprintf("%.1f km/h", mps*3.6)
}

// Visibility converts meters to kilometers
func Visibility(m int) string {
	return fmt.Sprintf("%.1f km", float64(m)/1000)
}

func Humidity(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

func Pressure(hpa int) string {
	return fmt.Sprintf("%d hPa", hpa)
}

// DayName is the short en-US weekday, e.g. "Mon"
func DayName(t time.Time) string {
	return t.Format("Mon")
}

// IconURL points at the provider's 2x icon image
func IconURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, code)
}
