package geodatum

import "math"

// Datum names a reference frame: an ellipsoid plus an anchoring to the
// earth. MGRSGrid and UTMGrid are pseudo-datums that exist only to let
// the Format Dispatcher parameterize a requested output grid; both
// alias WGS84's ellipsoid.
type Datum int

const (
	WGS84 Datum = iota
	NAD83
	NAD27
	ED50
	Tokyo
	OSGB36
	MGRSGrid
	UTMGrid
)

func (d Datum) String() string {
	switch d {
	case WGS84:
		return "WGS84"
	case NAD83:
		return "NAD83"
	case NAD27:
		return "NAD27"
	case ED50:
		return "ED50"
	case Tokyo:
		return "Tokyo"
	case OSGB36:
		return "OSGB36"
	case MGRSGrid:
		return "MGRS_Grid"
	case UTMGrid:
		return "UTM_Grid"
	default:
		return "unknown"
	}
}

// Ellipsoid is an immutable reference ellipsoid: semi-major axis a,
// flattening f, derived semi-minor axis b, first eccentricity squared
// e2 and second eccentricity squared ep2.
type Ellipsoid struct {
	Name string
	A    float64
	F    float64
	B    float64
	E2   float64
	Ep2  float64
}

// NewEllipsoid builds an Ellipsoid from semi-major axis and flattening,
// deriving b, e2 and ep2. Returns an error if a<=0 or f is not in (0,1).
func NewEllipsoid(name string, a, f float64) (Ellipsoid, error) {
	if a <= 0 {
		return Ellipsoid{}, newErr(ErrInvalidInput, "semi-major axis must be positive, got %v", a)
	}
	if f <= 0 || f >= 1 {
		return Ellipsoid{}, newErr(ErrInvalidInput, "flattening must be in (0,1), got %v", f)
	}
	b := a * (1 - f)
	e2 := 2*f - f*f
	ep2 := e2 / (1 - e2)
	return Ellipsoid{Name: name, A: a, F: f, B: b, E2: e2, Ep2: ep2}, nil
}

func mustEllipsoid(name string, a, f float64) Ellipsoid {
	e, err := NewEllipsoid(name, a, f)
	if err != nil {
		panic(err)
	}
	return e
}

// ellipsoidRegistry is the static, immutable table of named reference
// ellipsoids keyed by datum.
var ellipsoidRegistry = map[Datum]Ellipsoid{
	WGS84:    mustEllipsoid("WGS84", 6378137.0, 1/298.257223563),
	NAD83:    mustEllipsoid("GRS80", 6378137.0, 1/298.257222101),
	NAD27:    mustEllipsoid("Clarke 1866", 6378206.4, 1/294.9786982),
	ED50:     mustEllipsoid("International 1924", 6378388.0, 1/297.0),
	Tokyo:    mustEllipsoid("Bessel 1841", 6377397.155, 1/299.1528128),
	OSGB36:   mustEllipsoid("Airy 1830", 6377563.396, 1/299.3249646),
	MGRSGrid: mustEllipsoid("WGS84", 6378137.0, 1/298.257223563),
	UTMGrid:  mustEllipsoid("WGS84", 6378137.0, 1/298.257223563),
}

// canonicalDatum maps the pseudo-datums MGRSGrid/UTMGrid, which exist
// only to parameterize the Format Dispatcher, onto the physical datum
// they alias (WGS84) for every datum-shift and ellipsoid lookup.
func canonicalDatum(d Datum) Datum {
	if d == MGRSGrid || d == UTMGrid {
		return WGS84
	}
	return d
}

// EllipsoidOf is the Ellipsoid Registry's pure lookup: datum to the
// reference ellipsoid it is anchored to.
func EllipsoidOf(d Datum) (Ellipsoid, error) {
	e, ok := ellipsoidRegistry[d]
	if !ok {
		return Ellipsoid{}, newErr(ErrInvalidInput, "unknown datum %v", int(d))
	}
	return e, nil
}

// meridionalArcConstants are the four coefficients of the M(phi)
// series, derived from the ellipsoid's eccentricity. meridionalArc
// recomputes them on every call.
type meridionalArcConstants struct {
	c0, c1, c2, c3 float64
}

func meridionalConstants(e Ellipsoid) meridionalArcConstants {
	e2 := e.E2
	e4 := e2 * e2
	e6 := e4 * e2
	return meridionalArcConstants{
		c0: 1 - e2/4 - 3*e4/64 - 5*e6/256,
		c1: 3*e2/8 + 3*e4/32 + 45*e6/1024,
		c2: 15*e4/256 + 45*e6/1024,
		c3: 35 * e6 / 3072,
	}
}

// meridionalArc computes M(phi), the true meridional arc length from
// the equator to latitude phi (radians), per the standard 6th-order
// series in e.
func meridionalArc(e Ellipsoid, phi float64) float64 {
	c := meridionalConstants(e)
	return e.A * (c.c0*phi - c.c1*math.Sin(2*phi) + c.c2*math.Sin(4*phi) - c.c3*math.Sin(6*phi))
}
