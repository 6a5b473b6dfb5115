package lookup

import (
	"context"

	"weather-lookup/models"
)

// Locator reports the device's position. Implementations return one of the
// datasource geolocation error kinds on failure.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(ctx context.Context) (models.Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (models.Coordinates, error) {
	return f(ctx)
}

// FixedLocator always reports the same position
type FixedLocator struct {
	Coords models.Coordinates
}

func (f FixedLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	return f.Coords, nil
}
