package mapview

import (
	"fmt"

	"github.com/connectmate/connectmate_api/internal/model"
)

// UserMarkerColor marks the user's own position.
const UserMarkerColor = "#FF5722"

const (
	fallbackLeftBase = 30
	fallbackLeftStep = 20
	fallbackTopBase  = 40
	fallbackTopStep  = 15
)

// FallbackPosition places the index-th activity on the static map as
// percentages of the container.
func FallbackPosition(index int) (left, top int) {
	return fallbackLeftBase + index*fallbackLeftStep, fallbackTopBase + (index%2)*fallbackTopStep
}

// Markers returns the pins for the current state: geographic in MapReady,
// percentage placed in FallbackActive, none while Loading.
func (c *Controller) Markers() []model.Marker {
	markers := make([]model.Marker, 0, len(c.activities))

	switch c.State() {
	case MapReady:
		for _, a := range c.activities {
			if !a.HasCoordinates() {
				continue
			}
			lat, lng := *a.Lat, *a.Lng
			markers = append(markers, model.Marker{
				ActivityID: a.ID,
				Title:      a.Title,
				Color:      a.Color,
				Lat:        &lat,
				Lng:        &lng,
				Info:       InfoWindow(a),
			})
		}
	case FallbackActive:
		for i, a := range c.activities {
			left, top := FallbackPosition(i)
			markers = append(markers, model.Marker{
				ActivityID:  a.ID,
				Title:       a.Title,
				Color:       a.Color,
				LeftPercent: &left,
				TopPercent:  &top,
				Info:        InfoWindow(a),
			})
		}
	}
	return markers
}

// InfoWindow is the popup summary of a marker.
func InfoWindow(a model.Activity) string {
	return fmt.Sprintf("%s\n📍 %s\n🕐 %s\n👥 %d/%d", a.Title, a.Location, a.Time, a.Participants, a.MaxParticipants)
}
