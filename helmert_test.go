package geodatum

import (
	"math"
	"testing"
)

func TestGeocentricRoundTrip(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	for _, lat := range []float64{-60, -10, 0, 10, 45, 80} {
		for _, lon := range []float64{-170, -30, 0, 30, 170} {
			for _, alt := range []float64{0, 100, 5000} {
				phi := lat * math.Pi / 180
				lambda := lon * math.Pi / 180
				x, y, z := geocentric(wgs84, phi, lambda, alt)
				phi2, lambda2, h2 := geodeticFromGeocentric(wgs84, x, y, z)
				if math.Abs(phi2-phi) > 1e-9 || math.Abs(lambda2-lambda) > 1e-9 || math.Abs(h2-alt) > 1e-6 {
					t.Errorf("round trip at (%v,%v,%v): got (%v,%v,%v)",
						lat, lon, alt, phi2*180/math.Pi, lambda2*180/math.Pi, h2)
				}
			}
		}
	}
}

func TestTransformPointIdentity(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	lat2, lon2, alt2 := TransformPoint(wgs84, wgs84, 31.23, 121.47, 10, DatumTransform{})
	if lat2 != 31.23 || lon2 != 121.47 || alt2 != 10 {
		t.Errorf("identity transform changed the point: (%v,%v,%v)", lat2, lon2, alt2)
	}
}

func TestWGS84NAD27RoundTrip(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	nad27, _ := EllipsoidOf(NAD27)
	p := defaultTransforms[[2]Datum{WGS84, NAD27}]
	rev := reverseTransform(p)

	lat, lon := 39.9042, 116.4074
	lat1, lon1, _ := TransformPoint(wgs84, nad27, lat, lon, 0, p)
	lat2, lon2, _ := TransformPoint(nad27, wgs84, lat1, lon1, 0, rev)

	if math.Abs(lat2-lat) > 1e-6 || math.Abs(lon2-lon) > 1e-6 {
		t.Errorf("WGS84->NAD27->WGS84 round trip: got (%v,%v), want (%v,%v)", lat2, lon2, lat, lon)
	}
}

func TestShanghaiWGS84ToNAD27Offset(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	nad27, _ := EllipsoidOf(NAD27)
	p := defaultTransforms[[2]Datum{WGS84, NAD27}]

	lat, lon := 31.230416, 121.473701
	lat1, lon1, _ := TransformPoint(wgs84, nad27, lat, lon, 0, p)

	g := NewGeodesic(wgs84)
	result := g.Inverse(lat, lon, lat1, lon1)
	if result.Distance < 100 || result.Distance > 500 {
		t.Errorf("Shanghai WGS84->NAD27 offset = %v m, want roughly 280m", result.Distance)
	}
}

func TestReverseTransformNegatesScale(t *testing.T) {
	p := DatumTransform{Dx: 1, Dy: 2, Dz: 3, Rx: 0.1, Ry: 0.2, Rz: 0.3, ScalePPM: 5}
	rev := reverseTransform(p)
	if rev.ScalePPM != -5 || rev.Rx != -0.1 || rev.Ry != -0.2 || rev.Rz != -0.3 {
		t.Errorf("reverseTransform did not negate rotation/scale: %+v", rev)
	}
}
