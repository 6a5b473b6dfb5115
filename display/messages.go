package display

import (
	"errors"

	"weather-lookup/datasource"
	"weather-lookup/lookup"
)

// User-facing messages, one per failure kind
const (
	MsgEmptyQuery      = "Please enter a city name."
	MsgCityNotFound    = "City not found. Please check the spelling and try again."
	MsgCityFailed      = "Failed to fetch city information. Please check your API key or try again later."
	MsgWeatherNotFound = "Weather data not found for this location. Try another city."
	MsgUnauthorized    = "Authentication error. Please check your OpenWeatherMap API key."
	MsgWeatherFailed   = "Failed to fetch weather data. Please check your internet connection or try again later."
	MsgLocationDenied  = "Unable to retrieve your location. Please allow location access in your settings."
	MsgLocationUnavail = "Unable to retrieve your location. Location information is unavailable."
	MsgLocationTimeout = "Unable to retrieve your location. The request to get user location timed out."
	MsgUnsupported     = "Geolocation is not supported in this environment."
)

// Message maps a lookup error to the text shown to the user. Superseded lookups and nil
// errors have nothing to show.
func Message(err error) string {
	if err == nil || errors.Is(err, lookup.ErrSuperseded) {
		return ""
	}

	switch {
	case errors.Is(err, lookup.ErrEmptyQuery):
		return MsgEmptyQuery
	case errors.Is(err, datasource.ErrUnsupportedEnvironment):
		return MsgUnsupported
	case errors.Is(err, datasource.ErrGeolocationDenied):
		return MsgLocationDenied
	case errors.Is(err, datasource.ErrGeolocationTimeout):
		return MsgLocationTimeout
	case errors.Is(err, datasource.ErrGeolocationUnavailable):
		return MsgLocationUnavail
	case errors.Is(err, datasource.ErrUnauthorized):
		return MsgUnauthorized
	}

	resolving := false
	var opErr *lookup.OpError
	if errors.As(err, &opErr) {
		resolving = opErr.Op == lookup.OpResolveCity
	}

	switch {
	case errors.Is(err, datasource.ErrNotFound) && resolving:
		return MsgCityNotFound
	case errors.Is(err, datasource.ErrNotFound):
		return MsgWeatherNotFound
	case resolving:
		return MsgCityFailed
	default:
		return MsgWeatherFailed
	}
}
