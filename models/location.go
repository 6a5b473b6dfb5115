package models

// Location is a single geocoding match
type Location struct {
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Coordinates
}

// AddressComponents holds the optional place-name fields of a reverse-geocoded address
type AddressComponents struct {
	Neighbourhood string `json:"neighbourhood,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	Village       string `json:"village,omitempty"`
	Hamlet        string `json:"hamlet,omitempty"`
	Road          string `json:"road,omitempty"`
	Town          string `json:"town,omitempty"`
	City          string `json:"city,omitempty"`
}

// Candidates returns the fields ordered from most to least specific
func (a AddressComponents) Candidates() []string {
	return []string{
		a.Neighbourhood,
		a.Suburb,
		a.Village,
		a.Hamlet,
		a.Road,
		a.Town,
		a.City,
	}
}

// ReverseGeocodeResult is what a reverse geocoder returns for a position.
// Address is nil when the provider sent no address record at all.
type ReverseGeocodeResult struct {
	Address     *AddressComponents `json:"address,omitempty"`
	DisplayName string             `json:"displayName,omitempty"`
}
