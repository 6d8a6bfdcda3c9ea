package services

import "context"

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoordinates is the fallback position (Coimbatore, India) used when
// no real location is available or the provider denies access.
var DefaultCoordinates = Coordinates{Latitude: 11.0168, Longitude: 76.9558}

// Locator acquires the device position. Implementations may block while the
// provider resolves; callers fall back to DefaultCoordinates on error rather
// than propagating it.
type Locator interface {
	GetLocation(ctx context.Context) (Coordinates, error)
}

// StaticLocator is a Locator that always reports a fixed position. It stands
// in for a real geolocation provider.
type StaticLocator struct {
	Position Coordinates
}

// NewStaticLocator creates a StaticLocator reporting the default position.
func NewStaticLocator() *StaticLocator {
	return &StaticLocator{Position: DefaultCoordinates}
}

// GetLocation returns the fixed position.
func (l *StaticLocator) GetLocation(ctx context.Context) (Coordinates, error) {
	return l.Position, nil
}

// locate resolves the current position through loc, degrading to the default
// coordinates when the provider fails.
func locate(ctx context.Context, loc Locator) Coordinates {
	pos, err := loc.GetLocation(ctx)
	if err != nil {
		return DefaultCoordinates
	}
	return pos
}
