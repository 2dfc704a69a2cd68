package geodatum

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
)

func TestBritishGridRoundTrip(t *testing.T) {
	bg, err := NewBritishGrid()
	if err != nil {
		t.Fatalf("NewBritishGrid: %s", err)
	}
	for _, lat := range []float64{49.5, 51.0, 52.5, 55.8, 58.6} {
		for _, lon := range []float64{-6, -4, -2, 0, 1.5} {
			p, err := bg.Forward(s2.LatLngFromDegrees(lat, lon))
			if err != nil {
				t.Fatalf("Forward(%v,%v): %s", lat, lon, err)
			}
			ll, err := bg.Inverse(p)
			if err != nil {
				t.Fatalf("Inverse(%s): %s", p, err)
			}
			lat2, lon2 := ll.Lat.Degrees(), ll.Lng.Degrees()
			if math.Abs(lat2-lat) > 1e-7 || math.Abs(lon2-lon) > 1e-7 {
				t.Errorf("round trip at (%v,%v): got (%v,%v) via %s", lat, lon, lat2, lon2, p)
			}
		}
	}
}

func TestBritishGridLettersAvoidI(t *testing.T) {
	bg, err := NewBritishGrid()
	if err != nil {
		t.Fatalf("NewBritishGrid: %s", err)
	}
	for _, lat := range []float64{49.5, 51.0, 55.8} {
		for _, lon := range []float64{-6, -2, 1.5} {
			p, err := bg.Forward(s2.LatLngFromDegrees(lat, lon))
			if err != nil {
				continue
			}
			if p.EastLetter == 'I' || p.NorthLetter == 'I' {
				t.Errorf("grid letters at (%v,%v) included I: %s", lat, lon, p)
			}
		}
	}
}
