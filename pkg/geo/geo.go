package geo

import (
	"errors"
	"math"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
)

const earthRadiusKm = 6371.0

// MaxCityDistanceKm bounds how far a caller can be from a catalogued city
// before "use my location" gives up and asks them to name one.
const MaxCityDistanceKm = 80.0

var ErrNoNearbyCity = errors.New("no catalogued city within range")

// NearestCity resolves browser geolocation coordinates to the closest
// catalogued city, so a location share can stand in for a typed city name.
func NearestCity(lat, lon float64, cities []catalog.City) (catalog.City, error) {
	if len(cities) == 0 {
		return catalog.City{}, ErrNoNearbyCity
	}

	best := cities[0]
	bestDist := haversineKm(lat, lon, best.Lat, best.Lon)

	for _, c := range cities[1:] {
		d := haversineKm(lat, lon, c.Lat, c.Lon)
		if d < bestDist {
			best = c
			bestDist = d
		}
	}

	if bestDist > MaxCityDistanceKm {
		return catalog.City{}, ErrNoNearbyCity
	}

	return best, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
