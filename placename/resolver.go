// Package placename picks a human-readable place name out of a reverse-geocoded address.
package placename

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"weather-lookup/models"
)

// FallbackName is used when nothing better can be derived
const FallbackName = "Your Location"

// maxDisplayNameLen bounds the first segment of a raw display name
const maxDisplayNameLen = 30

var standaloneNumber = regexp.MustCompile(`\b\d+\b`)

// Resolve returns the most specific address component that does not look like an
// administrative ward/zone code. If none qualifies it falls back to the city, then to the
// first segment of displayName, then to FallbackName.
func Resolve(addr models.AddressComponents, displayName string) string {
	for _, candidate := range addr.Candidates() {
		if candidate == "" || isNoise(candidate) {
			continue
		}
		return candidate
	}

	// city is taken as-is here even if the scan above rejected it
	if addr.City != "" {
		return addr.City
	}

	if name, ok := fromDisplayName(displayName); ok {
		return name
	}
	return FallbackName
}

// FromReverse resolves the name for a full reverse-geocoding result. Without an address
// record the display name is not consulted.
func FromReverse(res models.ReverseGeocodeResult) string {
	if res.Address == nil {
		return FallbackName
	}
	return Resolve(*res.Address, res.DisplayName)
}

func isNoise(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "ward") && !strings.Contains(lower, "zone") {
		return false
	}
	return standaloneNumber.MatchString(name)
}

func fromDisplayName(displayName string) (string, bool) {
	if displayName == "" {
		return "", false
	}
	first, _, _ := strings.Cut(displayName, ",")
	first = strings.TrimSpace(first)
	if first == "" || utf8.RuneCountInString(first) > maxDisplayNameLen {
		return "", false
	}
	lower := strings.ToLower(first)
	if strings.Contains(lower, "ward") || strings.Contains(lower, "zone") {
		return "", false
	}
	return first, true
}
