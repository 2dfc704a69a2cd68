package geodatum

import "github.com/tidwall/geodesic"

// GeodesicResult is the outcome of an inverse geodesic computation: the
// distance in meters between two points and the forward azimuth at
// each, in degrees.
type GeodesicResult struct {
	Distance float64
	Azimuth1 float64
	Azimuth2 float64
}

// Geodesic is a thin façade over the external geodesic solver, bound
// to one ellipsoid. The context re-initializes this handle whenever
// the active ellipsoid changes.
type Geodesic struct {
	ellipsoid *geodesic.Ellipsoid
}

// NewGeodesic constructs a geodesic solver for the given ellipsoid.
func NewGeodesic(e Ellipsoid) *Geodesic {
	return &Geodesic{ellipsoid: geodesic.NewEllipsoid(e.A, e.F)}
}

// Inverse solves the inverse geodesic problem between two points on
// the same ellipsoid: distance in meters and forward azimuth at each
// endpoint, in degrees.
func (g *Geodesic) Inverse(lat1, lon1, lat2, lon2 float64) GeodesicResult {
	var s12, azi1, azi2 float64
	g.ellipsoid.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)
	return GeodesicResult{Distance: s12, Azimuth1: azi1, Azimuth2: azi2}
}

// Direct solves the direct geodesic problem: given a start point,
// azimuth (degrees) and distance (meters, >= 0), returns the
// destination point and the forward azimuth there.
func (g *Geodesic) Direct(lat1, lon1, azimuth, distance float64) (lat2, lon2, azi2 float64) {
	g.ellipsoid.Direct(lat1, lon1, azimuth, distance, &lat2, &lon2, &azi2)
	return lat2, lon2, azi2
}
