package geodatum

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
)

func TestUTMZoneExceptions(t *testing.T) {
	cases := []struct {
		lon, lat float64
		want     int
	}{
		{7, 60, 32},
		{10, 75, 33},
		{5, 75, 31},
		{25, 75, 35},
		{40, 75, 37},
	}
	for _, c := range cases {
		if got := utmZone(c.lon, c.lat); got != c.want {
			t.Errorf("utmZone(%v,%v) = %d, want %d", c.lon, c.lat, got, c.want)
		}
	}
}

func TestUTMBand(t *testing.T) {
	cases := []struct {
		lat  float64
		want byte
	}{
		{31.23, 'R'},
		{-33.87, 'H'},
		{51.51, 'U'},
	}
	for _, c := range cases {
		if got := utmBand(c.lat); got != c.want {
			t.Errorf("utmBand(%v) = %c, want %c", c.lat, got, c.want)
		}
	}
}

func TestUTMBandMonotone(t *testing.T) {
	prev := byte(0)
	for lat := -84.0; lat <= 84.0; lat += 0.5 {
		b := utmBand(lat)
		if b == 'I' || b == 'O' {
			t.Fatalf("utmBand(%v) produced skipped letter %c", lat, b)
		}
		if prev != 0 && b < prev {
			t.Fatalf("utmBand not monotone: lat=%v got %c after %c", lat, b, prev)
		}
		prev = b
	}
}

func TestUTMRoundTrip(t *testing.T) {
	wgs84, err := EllipsoidOf(WGS84)
	if err != nil {
		t.Fatalf("EllipsoidOf: %s", err)
	}
	utm, err := NewUTM(wgs84)
	if err != nil {
		t.Fatalf("NewUTM: %s", err)
	}
	for lon := -179.5; lon < 180; lon += 2.5 {
		for lat := -79.5; lat < 84; lat += 2.5 {
			p, err := utm.Forward(s2.LatLngFromDegrees(lat, lon), WGS84)
			if err != nil {
				continue
			}
			ll, err := utm.Inverse(p)
			if err != nil {
				t.Fatalf("Inverse at (%v,%v): %s", lat, lon, err)
			}
			lat2, lon2 := ll.Lat.Degrees(), ll.Lng.Degrees()
			if math.Abs(lat2-lat) > 1e-7 {
				t.Errorf("lat round trip at (%v,%v): got %v", lat, lon, lat2)
			}
			// near zone boundaries the wrong-zone remainder can reconstruct
			// a different but equidistant longitude; only assert the
			// round trip within a zone's normal span.
			if math.Abs(lon2-lon) > 1e-7 && math.Abs(lon2-lon) < 359 {
				t.Errorf("lon round trip at (%v,%v): got %v", lat, lon, lon2)
			}
		}
	}
}
