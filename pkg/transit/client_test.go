package transit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SearchStops(t *testing.T) {
	mockJSON := `[
		{"id": "de:08212:1", "name": "Karlsruhe Hauptbahnhof"},
		{"id": "de:08212:3", "name": "Karlsruhe Hbf Vorplatz"}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stops/search" {
			t.Errorf("expected path /stops/search, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "Hauptbahnhof Vorplatz" {
			t.Errorf("expected query 'Hauptbahnhof Vorplatz', got %q", r.URL.Query().Get("q"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	// Temporarily override the unexported global baseURL string
	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	stops, err := client.SearchStops("Hauptbahnhof Vorplatz")
	if err != nil {
		t.Fatalf("unexpected error searching mocked stops: %v", err)
	}

	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0].ID != "de:08212:1" {
		t.Errorf("expected first stop id 'de:08212:1', got %q", stops[0].ID)
	}
	if stops[0].Name != "Karlsruhe Hauptbahnhof" {
		t.Errorf("expected first stop name 'Karlsruhe Hauptbahnhof', got %q", stops[0].Name)
	}
}

func TestClient_SearchStops_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	_, err := client.SearchStops("Marktplatz")
	if err == nil {
		t.Fatalf("expected an error for a 500 response, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected the status code in the error, got %q", err.Error())
	}
}

func TestClient_FetchDepartures(t *testing.T) {
	mockJSON := `[
		{"line": "S1", "direction": "Pforzheim", "platform": "3", "minutes_remaining": 5, "is_realtime": true},
		{"line": "S2", "direction": "Karlsruhe", "platform": "1", "minutes_remaining": 2, "is_realtime": false}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stops/de:08212:1" {
			t.Errorf("expected path /stops/de:08212:1, got %s", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	deps, err := client.FetchDepartures("de:08212:1")
	if err != nil {
		t.Fatalf("unexpected error fetching mocked departures: %v", err)
	}

	if len(deps) != 2 {
		t.Fatalf("expected 2 departures, got %d", len(deps))
	}
	if deps[0].Line != "S1" || deps[0].MinutesRemaining != 5 || !deps[0].IsRealtime {
		t.Errorf("first departure parsed incorrectly: %+v", deps[0])
	}
	if deps[1].Platform != "1" || deps[1].IsRealtime {
		t.Errorf("second departure parsed incorrectly: %+v", deps[1])
	}
}

func TestClient_FetchDepartures_MissingField(t *testing.T) {
	// minutes_remaining is absent; the decode must fail rather than zero it
	mockJSON := `[
		{"line": "S1", "direction": "Pforzheim", "platform": "3", "is_realtime": true}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	_, err := client.FetchDepartures("de:08212:1")
	if err == nil {
		t.Fatalf("expected an error for a record with a missing field, got nil")
	}
	if !strings.Contains(err.Error(), "minutes_remaining") {
		t.Errorf("expected the error to name the missing field, got %q", err.Error())
	}
}
