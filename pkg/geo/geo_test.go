package geo

import (
	"errors"
	"testing"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
)

func TestNearestCity(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{name: "central London", lat: 51.51, lon: -0.12, want: "London"},
		{name: "Salford resolves to Manchester", lat: 53.49, lon: -2.29, want: "Manchester"},
		{name: "Gateshead resolves to Newcastle", lat: 54.95, lon: -1.60, want: "Newcastle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := NearestCity(tt.lat, tt.lon, catalog.Cities())
			if err != nil {
				t.Fatalf("NearestCity: %v", err)
			}
			if city.Name != tt.want {
				t.Errorf("got %s, want %s", city.Name, tt.want)
			}
		})
	}
}

func TestNearestCityOutOfRange(t *testing.T) {
	// Lerwick, Shetland: far from every catalogued city.
	_, err := NearestCity(60.15, -1.15, catalog.Cities())
	if !errors.Is(err, ErrNoNearbyCity) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestNearestCityEmptyCatalog(t *testing.T) {
	_, err := NearestCity(51.5, -0.1, nil)
	if !errors.Is(err, ErrNoNearbyCity) {
		t.Fatalf("expected error for empty catalog, got %v", err)
	}
}
