package model

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Marker is one activity pin. Lat/Lng are set when the SDK map is ready,
// LeftPercent/TopPercent when the fallback layout is active.
type Marker struct {
	ActivityID  string   `json:"activityId"`
	Title       string   `json:"title"`
	Color       string   `json:"color,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	LeftPercent *int     `json:"leftPercent,omitempty"`
	TopPercent  *int     `json:"topPercent,omitempty"`
	Info        string   `json:"info"`
}

type MapView struct {
	State        string     `json:"state"`
	Center       Coordinate `json:"center"`
	UserLocation *Marker    `json:"userLocation,omitempty"`
	Markers      []Marker   `json:"markers"`
	Selected     *Activity  `json:"selected,omitempty"`
}

// Place is a Kakao keyword search hit mapped onto a ConnectMate category.
type Place struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	RoadAddress   string  `json:"roadAddress,omitempty"`
	KakaoCategory string  `json:"kakaoCategory"`
	Category      string  `json:"category"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Distance      string  `json:"distance,omitempty"`
	URL           string  `json:"url,omitempty"`
}
