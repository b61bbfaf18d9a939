package model

// Activity is a meetup/event record shown on the list and the map.
// Time is free text and is never parsed. Participants <= MaxParticipants is
// expected but not enforced.
type Activity struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	Time            string   `json:"time"`
	Description     string   `json:"description"`
	Participants    int      `json:"participants"`
	MaxParticipants int      `json:"maxParticipants"`
	Category        string   `json:"category"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	Color           string   `json:"color,omitempty"`
	Icon            string   `json:"icon,omitempty"`
}

// HasCoordinates reports whether the activity can be placed on the SDK map.
func (a Activity) HasCoordinates() bool {
	return a.Lat != nil && a.Lng != nil
}

// Clone returns a copy that shares no pointers with a.
func (a Activity) Clone() Activity {
	c := a
	if a.Lat != nil {
		lat := *a.Lat
		c.Lat = &lat
	}
	if a.Lng != nil {
		lng := *a.Lng
		c.Lng = &lng
	}
	return c
}

// CloneActivities copies a slice of activities, never returning nil.
func CloneActivities(in []Activity) []Activity {
	out := make([]Activity, 0, len(in))
	for _, a := range in {
		out = append(out, a.Clone())
	}
	return out
}
