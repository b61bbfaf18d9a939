package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/connectmate/connectmate_api/config"
	deps "github.com/connectmate/connectmate_api/internal/debs"
	"github.com/connectmate/connectmate_api/internal/mapview"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/stretchr/testify/require"
)

const placesBody = `{"documents":[{"id":"1","place_name":"Seoul Forest","address_name":"Seongdong-gu","category_name":"여행 > 관광,명소 > 공원","x":"127.037","y":"37.544"}]}`

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	api     *API
	handler http.Handler
	kakao   *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	kakaoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(placesBody))
	}))
	t.Cleanup(kakaoSrv.Close)

	cfg := &config.Config{MapSDKTimeout: time.Second}
	d := deps.New(context.Background(), cfg)
	d.Kakao.RESTKey = "test-rest-key"
	d.Kakao.BaseURL = kakaoSrv.URL
	d.Start(context.Background())
	t.Cleanup(d.Close)

	select {
	case <-d.Map.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("map did not settle")
	}
	require.Equal(t, mapview.FallbackActive, d.Map.State())

	api := &API{Config: cfg, Deps: d}
	return &testServer{api: api, handler: api.setUpServerHandler(), kakao: kakaoSrv}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(values.HeaderRequestSource, "test")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
