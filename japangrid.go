package geodatum

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const japanK0 = 0.9999

// japanZoneOrigin is one of the 19 Japan Plane-Rectangular Grid zone
// origins, in degrees.
type japanZoneOrigin struct {
	zone int
	lat  float64
	lon  float64
}

var japanZones = [19]japanZoneOrigin{
	{1, 33.0, 129.5},
	{2, 33.0, 131.0},
	{3, 36.0, 132.1667},
	{4, 33.0, 133.5},
	{5, 36.0, 134.3333},
	{6, 36.0, 136.0},
	{7, 36.0, 137.1667},
	{8, 36.0, 138.5},
	{9, 36.0, 139.8333},
	{10, 40.0, 140.8333},
	{11, 44.0, 140.25},
	{12, 44.0, 142.25},
	{13, 44.0, 144.25},
	{14, 26.0, 142.0},
	{15, 26.0, 127.5},
	{16, 26.0, 124.0},
	{17, 26.0, 131.0},
	{18, 20.0, 136.0},
	{19, 26.0, 154.0},
}

// JapanGridPoint is a point in the Japan Plane-Rectangular Grid. Note
// the x/y swap relative to other grids in this package: x is
// northing, y is easting, following the national convention. No false
// offsets are applied.
type JapanGridPoint struct {
	Zone int
	X    float64 // northing
	Y    float64 // easting
}

// JapanGrid projects geographic points to and from the Japan
// Plane-Rectangular Grid. It always operates on the Tokyo/Bessel 1841
// ellipsoid.
type JapanGrid struct {
	zones [20]*TransverseMercator
}

// NewJapanGrid constructs a Japan Grid projector bound to Bessel 1841.
func NewJapanGrid() (*JapanGrid, error) {
	bessel, err := EllipsoidOf(Tokyo)
	if err != nil {
		return nil, err
	}
	g := &JapanGrid{}
	for _, z := range japanZones {
		tm, err := NewTransverseMercator(bessel, z.lon*math.Pi/180, z.lat*math.Pi/180, 0, 0, japanK0)
		if err != nil {
			return nil, err
		}
		g.zones[z.zone] = tm
	}
	return g, nil
}

// nearestZone returns the zone number whose origin minimizes squared
// angular distance to (lat, lon), both in degrees. There is no hard
// geographic bound on this selection.
func nearestZone(lat, lon float64) int {
	best := japanZones[0].zone
	bestDist := math.Inf(1)
	for _, z := range japanZones {
		dLat := lat - z.lat
		dLon := lon - z.lon
		dist := dLat*dLat + dLon*dLon
		if dist < bestDist {
			bestDist = dist
			best = z.zone
		}
	}
	return best
}

// Forward projects a geographic point (already on Tokyo) into the
// nearest-origin Japan Grid zone.
func (g *JapanGrid) Forward(geodetic s2.LatLng) (JapanGridPoint, error) {
	lat := geodetic.Lat.Degrees()
	lon := geodetic.Lng.Degrees()
	zone := nearestZone(lat, lon)
	tm := g.zones[zone]
	if tm == nil {
		return JapanGridPoint{}, newErr(ErrInvalidInput, "zone %d not initialized", zone)
	}
	easting, northing := tm.Forward(geodetic.Lat.Radians(), geodetic.Lng.Radians())
	return JapanGridPoint{Zone: zone, X: northing, Y: easting}, nil
}

// Inverse recovers a geographic point (on Tokyo) from a JapanGridPoint.
func (g *JapanGrid) Inverse(p JapanGridPoint) (s2.LatLng, error) {
	if p.Zone < 1 || p.Zone > 19 {
		return s2.LatLng{}, newErr(ErrInvalidInput, "Japan Grid zone %d out of range [1,19]", p.Zone)
	}
	tm := g.zones[p.Zone]
	if tm == nil {
		return s2.LatLng{}, newErr(ErrInvalidInput, "zone %d not initialized", p.Zone)
	}
	phi, lambda, err := tm.Inverse(p.Y, p.X)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}, nil
}

func (p JapanGridPoint) String() string {
	return fmt.Sprintf("Zone %d: %.3f, %.3f", p.Zone, p.X, p.Y)
}
