package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/geo"
)

func TestReverse_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "123 Sukhumvit Road, Bangkok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "attendance-backend-test", 5*time.Second)
	got, err := c.Reverse(context.Background(), geo.Coordinate{Latitude: 13.7563, Longitude: 100.5018})
	if err != nil {
		t.Fatalf("Reverse returned error: %v", err)
	}
	if got != "123 Sukhumvit Road, Bangkok" {
		t.Errorf("Reverse = %q", got)
	}
}

func TestReverse_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "attendance-backend-test", 5*time.Second)
	if _, err := c.Reverse(context.Background(), geo.Coordinate{}); err == nil {
		t.Error("Reverse did not propagate the geocoder error")
	}
}

func TestReverse_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "attendance-backend-test", 5*time.Second)
	if _, err := c.Reverse(context.Background(), geo.Coordinate{}); err == nil {
		t.Error("Reverse did not fail on non-200 status")
	}
}

func TestFallbackLabel(t *testing.T) {
	got := FallbackLabel(geo.Coordinate{Latitude: 13.7563, Longitude: 100.5018})
	want := "13.756300, 100.501800"
	if got != want {
		t.Errorf("FallbackLabel = %q, want %q", got, want)
	}
}
