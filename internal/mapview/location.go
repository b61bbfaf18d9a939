package mapview

import (
	"context"
	"log/slog"

	"github.com/connectmate/connectmate_api/internal/model"
)

// DefaultCenter is used whenever the user's position is unknown.
var DefaultCenter = model.Coordinate{Lat: 37.5665, Lng: 126.9780}

// Geolocator reports the user's position.
type Geolocator interface {
	Locate(ctx context.Context) (model.Coordinate, error)
}

type GeolocatorFunc func(ctx context.Context) (model.Coordinate, error)

func (f GeolocatorFunc) Locate(ctx context.Context) (model.Coordinate, error) { return f(ctx) }

// Locate asks g for a position and falls back to DefaultCenter on any
// failure. The bool reports whether g succeeded.
func Locate(ctx context.Context, g Geolocator) (model.Coordinate, bool) {
	if g == nil {
		return DefaultCenter, false
	}
	coord, err := g.Locate(ctx)
	if err != nil {
		slog.DebugContext(ctx, "geolocation unavailable, using default center", "error", err)
		return DefaultCenter, false
	}
	// written so NaN fails the range check
	if !(coord.Lat >= -90 && coord.Lat <= 90) || !(coord.Lng >= -180 && coord.Lng <= 180) {
		return DefaultCenter, false
	}
	return coord, true
}
