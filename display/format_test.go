package display

import (
	"testing"
	"time"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
		{14.6, 15},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUnitConversions(t *testing.T) {
	if got := WindSpeed(10); got != "36.0 km/h" {
		t.Errorf("WindSpeed(10) = %q", got)
	}
	if got := WindSpeed(0); got != "0.0 km/h" {
		t.Errorf("WindSpeed(0) = %q", got)
	}
	if got := Visibility(8000); got != "8.0 km" {
		t.Errorf("Visibility(8000) = %q", got)
	}
	if got := Visibility(10000); got != "10.0 km" {
		t.Errorf("Visibility(10000) = %q", got)
	}
	if got := Humidity(81); got != "81%" {
		t.Errorf("Humidity(81) = %q", got)
	}
	if got := Pressure(1012); got != "1012 hPa" {
		t.Errorf("Pressure(1012) = %q", got)
	}
	if got := TempRange(8.6, 14.2); got != "9°C / 14°C" {
		t.Errorf("TempRange = %q", got)
	}
}

func TestDayNameAndIcon(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if got := DayName(day); got != "Mon" {
		t.Errorf("DayName = %q, want Mon", got)
	}
	if got := IconURL("10d"); got != "https://openweathermap.org/img/wn/10d@2x.png" {
		t.Errorf("IconURL = %q", got)
	}
	if got := IconURL(""); got != "" {
		t.Errorf("expected empty icon URL, got %q", got)
	}
}
