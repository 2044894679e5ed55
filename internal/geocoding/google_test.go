package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", 1000)
	c.baseURL = srv.URL
	return c
}

func TestGeocodeSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Boston, MA" {
			t.Errorf("address param: got %q", got)
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [{
				"formatted_address": "Boston, MA, USA",
				"geometry": {"location": {"lat": 42.36, "lng": -71.06}}
			}]
		}`)
	})

	res, err := c.Geocode(context.Background(), "Boston, MA")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Lat != 42.36 || res.Lng != -71.06 {
		t.Errorf("coords: got %v, %v", res.Lat, res.Lng)
	}
	if res.Formatted != "Boston, MA, USA" {
		t.Errorf("formatted: got %q", res.Formatted)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	res, err := c.Geocode(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("expected no error for zero results, got %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
}

func TestGeocodeAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "results": []}`)
	})

	_, err := c.Geocode(context.Background(), "Boston")
	if err == nil {
		t.Fatal("expected an error for REQUEST_DENIED")
	}
}

func TestGeocodeHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Geocode(context.Background(), "Boston")
	if err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
}

func TestNewClientWithoutKey(t *testing.T) {
	if c := NewClient("", 10); c != nil {
		t.Error("expected nil client when API key is missing")
	}
}

func TestResolverSwallowsFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r := NewPlaceResolver(c)

	pt, err := r.Resolve(context.Background(), "Boston")
	if err != nil {
		t.Fatalf("resolver must not propagate collaborator errors, got %v", err)
	}
	if pt != nil {
		t.Errorf("expected nil point, got %+v", pt)
	}
}

func TestResolverNilClient(t *testing.T) {
	r := NewPlaceResolver(nil)

	pt, err := r.Resolve(context.Background(), "Boston")
	if err != nil || pt != nil {
		t.Errorf("expected (nil, nil), got %v / %v", pt, err)
	}
}
