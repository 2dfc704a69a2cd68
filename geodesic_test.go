package geodatum

import "testing"

func TestGeodesicShanghaiToBeijing(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	g := NewGeodesic(wgs84)
	result := g.Inverse(31.230416, 121.473701, 39.904211, 116.407394)
	const want = 1067000.0
	if diff := result.Distance - want; diff < -2000 || diff > 2000 {
		t.Errorf("Shanghai-Beijing distance = %v, want ~%v (+-2km)", result.Distance, want)
	}
}

func TestGeodesicDirectFromShanghai(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	g := NewGeodesic(wgs84)
	lat2, lon2, _ := g.Direct(31.230416, 121.473701, 45, 100000)
	if diff := lat2 - 31.86; diff < -0.05 || diff > 0.05 {
		t.Errorf("direct lat = %v, want ~31.86 (+-0.05)", lat2)
	}
	if diff := lon2 - 122.22; diff < -0.05 || diff > 0.05 {
		t.Errorf("direct lon = %v, want ~122.22 (+-0.05)", lon2)
	}
}

func TestGeodesicInverseDirectRoundTrip(t *testing.T) {
	wgs84, _ := EllipsoidOf(WGS84)
	g := NewGeodesic(wgs84)
	result := g.Inverse(10, 20, 30, 40)
	lat2, lon2, _ := g.Direct(10, 20, result.Azimuth1, result.Distance)
	if diff := lat2 - 30; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("round trip lat = %v, want 30", lat2)
	}
	if diff := lon2 - 40; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("round trip lon = %v, want 40", lon2)
	}
}
