package geodatum

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GeoCoord is a geographic point: latitude and longitude in degrees,
// altitude in meters, anchored to a Datum. It is a plain value type,
// copied across every API boundary in this package.
type GeoCoord struct {
	Lat, Lon, Alt float64
	Datum         Datum
}

// NewGeoCoord validates and normalizes lat/lon before returning a
// GeoCoord. Longitude is wrapped by +-360 into [-180,180]; latitude is
// clamped into [-90,90] rather than rejected, matching the teacher's
// latitude/longitude normalization helpers.
func NewGeoCoord(lat, lon, alt float64, d Datum) GeoCoord {
	return GeoCoord{Lat: clampLat(lat), Lon: normalizeLon(lon), Alt: alt, Datum: d}
}

// LatLng converts the coordinate to the s2.LatLng representation used
// internally by every projector in this package.
func (g GeoCoord) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(g.Lat * math.Pi / 180), Lng: s1.Angle(g.Lon * math.Pi / 180)}
}

func geoCoordFromLatLng(ll s2.LatLng, alt float64, d Datum) GeoCoord {
	return GeoCoord{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees(), Alt: alt, Datum: d}
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}

// normalizeLon wraps a longitude in degrees into [-180, 180] by
// repeated +-360 shifting.
func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// validateLat returns an error if lat is outside [-90, 90].
func validateLat(lat float64) error {
	if lat < -90 || lat > 90 {
		return newErr(ErrOutOfRange, "latitude %v out of range [-90,90]", lat)
	}
	return nil
}

// validateLon returns an error if lon is outside [-180, 180].
func validateLon(lon float64) error {
	if lon < -180 || lon > 180 {
		return newErr(ErrOutOfRange, "longitude %v out of range [-180,180]", lon)
	}
	return nil
}
