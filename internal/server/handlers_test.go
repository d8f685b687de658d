package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

func testStore() *Store {
	return NewStore([]vehicle.Vehicle{
		{ID: "a", DisplayID: 1, Make: "Ford", Model: "Transit", Person: "Alice", EstimatedDate: "2024/15/03"},
		{ID: "b", DisplayID: 2, Make: "Iveco", Model: "Daily"},
	})
}

func TestVehicles_ListHandler(t *testing.T) {
	h := Vehicles{Store: testStore()}

	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []vehicle.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
}

func TestVehicles_ListHandlerEmpty(t *testing.T) {
	h := Vehicles{Store: NewStore(nil)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ListHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/vehicles", nil))

	assert.Equal(t, "[]", rr.Body.String())
}

func TestVehicles_UpdateHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
	}{
		{"ok", "a", `{"person":"Bob","estimatedDate":"2025/01/01"}`, http.StatusOK},
		{"clear estimate", "a", `{"person":"","estimatedDate":""}`, http.StatusOK},
		{"unknown id", "zzz", `{"person":"Bob","estimatedDate":"2025/01/01"}`, http.StatusNotFound},
		{"bad date", "a", `{"person":"Bob","estimatedDate":"2025-01-01"}`, http.StatusBadRequest},
		{"bad json", "a", `{"person":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Vehicles{Store: testStore()}

			req := httptest.NewRequest(http.MethodPatch, "/vehicles/"+tt.id, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()
			http.HandlerFunc(h.UpdateHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				var e ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
				assert.NotEmpty(t, e.Error)
			}
		})
	}
}

func TestVehicles_UpdateHandlerMergesOnlyEditableFields(t *testing.T) {
	store := testStore()
	h := Vehicles{Store: store}

	body := `{"person":"Bob","estimatedDate":"2025/01/01","make":"Tesla","displayId":99}`
	req := httptest.NewRequest(http.MethodPatch, "/vehicles/a", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "a"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Person)
	assert.Equal(t, "2025/01/01", got.EstimatedDate)
	assert.Equal(t, "Ford", got.Make)
	assert.Equal(t, 1, got.DisplayID)
}

func TestRouter(t *testing.T) {
	ts := httptest.NewServer(NewRouter(testStore()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/vehicles/b", strings.NewReader(`{"person":"Eve","estimatedDate":"2026/28/02"}`))
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/vehicles")
	require.NoError(t, err)
	defer resp.Body.Close()
	var got []vehicle.Vehicle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Eve", got[1].Person)

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/vehicles/a", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServerServe(t *testing.T) {
	srv, err := New(&Config{Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/vehicles")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNewWithBadSeed(t *testing.T) {
	_, err := New(&Config{SeedPath: "/nonexistent/seed.json"})
	assert.Error(t, err)
}
