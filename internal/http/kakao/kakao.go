package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/google/go-querystring/query"
)

const (
	DefaultAPIBaseURL = "https://dapi.kakao.com"
	sdkPath           = "/v2/maps/sdk.js"
	keywordPath       = "/v2/local/search/keyword.json"

	// SearchRadius limits keyword search around the caller, in meters.
	SearchRadius = 20000
)

var ErrMissingKey = errors.New("kakao key is not set")

// KakaoClient talks to the Kakao Maps SDK host and the Kakao Local REST API
type KakaoClient struct {
	AppKey  string
	RESTKey string
	BaseURL string
	Client  *http.Client
}

// NewKakaoClient creates a client. Empty keys are accepted and fail at call time.
func NewKakaoClient(appKey, restKey string) *KakaoClient {
	if appKey == "" {
		slog.Warn("Kakao map app key is empty")
	}
	if restKey == "" {
		slog.Warn("Kakao REST API key is empty")
	}
	return &KakaoClient{
		AppKey:  appKey,
		RESTKey: restKey,
		BaseURL: DefaultAPIBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// --- Query Structures ---

type sdkQuery struct {
	AppKey   string `url:"appkey"`
	Autoload bool   `url:"autoload"`
}

// keywordQuery centres the search when X/Y are set; Kakao wants x as longitude.
type keywordQuery struct {
	Query  string   `url:"query"`
	X      *float64 `url:"x,omitempty"`
	Y      *float64 `url:"y,omitempty"`
	Radius *int     `url:"radius,omitempty"`
}

// --- Keyword Search Structures ---

type keywordResponse struct {
	Documents []document `json:"documents"`
	Meta      struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
}

// document is one place hit; Kakao sends x (longitude) and y (latitude) as strings
type document struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	CategoryName    string `json:"category_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
	Distance        string `json:"distance"`
	PlaceURL        string `json:"place_url"`
}

func (kc *KakaoClient) buildURL(path string, params interface{}) (string, error) {
	u, err := url.Parse(kc.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("parse kakao url: %w", err)
	}
	v, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encode kakao query: %w", err)
	}
	u.RawQuery = v.Encode()
	return u.String(), nil
}

// SearchKeyword finds places matching query, near center when it is set.
func (kc *KakaoClient) SearchKeyword(ctx context.Context, query string, center *model.Coordinate) ([]model.Place, error) {
	if kc.RESTKey == "" {
		return nil, ErrMissingKey
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Place{}, nil
	}

	q := keywordQuery{Query: query}
	if center != nil {
		radius := SearchRadius
		q.X, q.Y, q.Radius = &center.Lng, &center.Lat, &radius
	}
	reqURL, err := kc.buildURL(keywordPath, q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword search request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+kc.RESTKey)

	resp, err := kc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute keyword search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "kakao keyword search failed", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("kakao error: status code %d", resp.StatusCode)
	}

	var kr keywordResponse
	if err := json.Unmarshal(body, &kr); err != nil {
		return nil, fmt.Errorf("failed to decode keyword search response: %w", err)
	}

	places := make([]model.Place, 0, len(kr.Documents))
	for _, d := range kr.Documents {
		lat, err := strconv.ParseFloat(d.Y, 64)
		if err != nil {
			slog.DebugContext(ctx, "skipping place with bad latitude", "id", d.ID, "y", d.Y)
			continue
		}
		lng, err := strconv.ParseFloat(d.X, 64)
		if err != nil {
			slog.DebugContext(ctx, "skipping place with bad longitude", "id", d.ID, "x", d.X)
			continue
		}
		places = append(places, model.Place{
			ID:            d.ID,
			Name:          d.PlaceName,
			Address:       d.AddressName,
			RoadAddress:   d.RoadAddressName,
			KakaoCategory: d.CategoryName,
			Category:      MapCategory(d.CategoryName),
			Lat:           lat,
			Lng:           lng,
			Distance:      d.Distance,
			URL:           d.PlaceURL,
		})
	}
	return places, nil
}

// Load fetches the Maps SDK script, which is how the map screen knows the
// SDK can be used with the configured app key.
func (kc *KakaoClient) Load(ctx context.Context) error {
	if kc.AppKey == "" {
		return ErrMissingKey
	}

	reqURL, err := kc.buildURL(sdkPath, sdkQuery{AppKey: kc.AppKey, Autoload: false})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create sdk request: %w", err)
	}

	resp, err := kc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load kakao maps sdk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kakao maps sdk: status code %d", resp.StatusCode)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read kakao maps sdk: %w", err)
	}
	if n == 0 {
		return errors.New("kakao maps sdk: empty script")
	}
	return nil
}
