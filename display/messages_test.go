package display

import (
	"errors"
	"fmt"
	"testing"

	"weather-lookup/datasource"
	"weather-lookup/lookup"
)

func TestMessage(t *testing.T) {
	resolve := func(err error) error { return &lookup.OpError{Op: lookup.OpResolveCity, Err: err} }
	fetch := func(err error) error { return &lookup.OpError{Op: lookup.OpFetchWeather, Err: err} }
	locate := func(err error) error { return &lookup.OpError{Op: lookup.OpLocate, Err: err} }

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"superseded", lookup.ErrSuperseded, ""},
		{"empty query", lookup.ErrEmptyQuery, MsgEmptyQuery},
		{"city not found", resolve(datasource.ErrNotFound), MsgCityNotFound},
		{"city network", resolve(datasource.NetworkError("geocode", errors.New("dial tcp"))), MsgCityFailed},
		{"city unauthorized", resolve(datasource.NewAPIError("OpenWeatherMap", 401, "Invalid API key")), MsgUnauthorized},
		{"weather unauthorized", fetch(datasource.NewAPIError("OpenWeatherMap", 401, "")), MsgUnauthorized},
		{"weather not found", fetch(datasource.NewAPIError("OpenWeatherMap", 404, "")), MsgWeatherNotFound},
		{"weather network", fetch(datasource.NewAPIError("OpenWeatherMap", 500, "")), MsgWeatherFailed},
		{"denied", locate(datasource.ErrGeolocationDenied), MsgLocationDenied},
		{"unavailable", locate(fmt.Errorf("%w: no fix", datasource.ErrGeolocationUnavailable)), MsgLocationUnavail},
		{"timeout", locate(datasource.ErrGeolocationTimeout), MsgLocationTimeout},
		{"unsupported", locate(datasource.ErrUnsupportedEnvironment), MsgUnsupported},
		{"unclassified", errors.New("boom"), MsgWeatherFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
