package geodatum

import "math"

const arcSecToRad = math.Pi / (180 * 3600)

// DatumTransform is a seven-parameter Helmert transform: three
// translations in meters, three rotations in arc-seconds, and a scale
// in parts-per-million. The zero value is the identity transform.
type DatumTransform struct {
	Dx, Dy, Dz float64
	Rx, Ry, Rz float64
	ScalePPM   float64
}

// IsIdentity reports whether every parameter is zero.
func (p DatumTransform) IsIdentity() bool {
	return p.Dx == 0 && p.Dy == 0 && p.Dz == 0 &&
		p.Rx == 0 && p.Ry == 0 && p.Rz == 0 && p.ScalePPM == 0
}

// defaultTransforms seeds a fresh Context's transform table: forward
// parameters keyed by (from, to). WGS84<->NAD83, WGS84<->MGRSGrid and
// WGS84<->UTMGrid default to identity and are left unset.
var defaultTransforms = map[[2]Datum]DatumTransform{
	{WGS84, NAD27}:  {Dx: -8, Dy: 160, Dz: 176, Rx: -0.25, Ry: 0.75, Rz: -0.06, ScalePPM: -0.34},
	{WGS84, ED50}:   {Dx: -87, Dy: -98, Dz: -121, Rx: -0.59, Ry: -0.32, Rz: -1.12, ScalePPM: -3.72},
	{WGS84, Tokyo}:  {Dx: -148, Dy: 507, Dz: 685},
	{WGS84, OSGB36}: {Dx: -446.448, Dy: 125.157, Dz: -542.060, Rx: -0.1502, Ry: -0.2470, Rz: -0.8421, ScalePPM: 20.4894},
}

// geocentric converts geodetic (phi, lambda radians, h meters) on the
// given ellipsoid to geocentric Cartesian (X, Y, Z) meters.
func geocentric(e Ellipsoid, phi, lambda, h float64) (x, y, z float64) {
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	N := e.A / math.Sqrt(1-e.E2*sinPhi*sinPhi)
	x = (N + h) * cosPhi * math.Cos(lambda)
	y = (N + h) * cosPhi * math.Sin(lambda)
	z = (N*(1-e.E2) + h) * sinPhi
	return x, y, z
}

// geodeticFromGeocentric converts geocentric Cartesian (X, Y, Z) meters
// back to geodetic (phi, lambda radians, h meters) on the given
// ellipsoid, via the closed-form Bowring-style solution.
func geodeticFromGeocentric(e Ellipsoid, x, y, z float64) (phi, lambda, h float64) {
	p := math.Hypot(x, y)
	theta := math.Atan2(z*e.A, p*e.B)
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

	phi = math.Atan2(z+e.Ep2*e.B*sinTheta*sinTheta*sinTheta, p-e.E2*e.A*cosTheta*cosTheta*cosTheta)
	lambda = math.Atan2(y, x)

	sinPhi := math.Sin(phi)
	N := e.A / math.Sqrt(1-e.E2*sinPhi*sinPhi)
	if math.Abs(math.Cos(phi)) > 1e-12 {
		h = p/math.Cos(phi) - N
	} else {
		h = math.Abs(z) - e.B
	}
	return phi, lambda, h
}

// applyHelmert applies the position-vector Helmert transform to a
// geocentric point.
func applyHelmert(x, y, z float64, p DatumTransform) (x2, y2, z2 float64) {
	sigma := p.ScalePPM * 1e-6
	rx := p.Rx * arcSecToRad
	ry := p.Ry * arcSecToRad
	rz := p.Rz * arcSecToRad

	x2 = p.Dx + (1+sigma)*x + rz*y - ry*z
	y2 = p.Dy - rz*x + (1+sigma)*y + rx*z
	z2 = p.Dz + ry*x - rx*y + (1+sigma)*z
	return x2, y2, z2
}

// TransformPoint shifts a geodetic point from ellipsoid `from` to
// ellipsoid `to` using the supplied seven-parameter transform (applied
// from -> to). An identity transform is a pure copy.
func TransformPoint(from, to Ellipsoid, lat, lon, alt float64, p DatumTransform) (lat2, lon2, alt2 float64) {
	if p.IsIdentity() {
		return lat, lon, alt
	}
	x, y, z := geocentric(from, lat*math.Pi/180, lon*math.Pi/180, alt)
	x2, y2, z2 := applyHelmert(x, y, z, p)
	phi2, lambda2, h2 := geodeticFromGeocentric(to, x2, y2, z2)
	return phi2 * 180 / math.Pi, lambda2 * 180 / math.Pi, h2
}

// reverseTransform derives the inverse seven-parameter transform from
// a forward one: scale and rotations are negated, and the translation
// vector is negated and corrected for rotation coupling to first
// order, exactly as coord_set_transform_params does for the paired
// entry it writes alongside every explicit one.
func reverseTransform(p DatumTransform) DatumTransform {
	sigma := p.ScalePPM * 1e-6
	factor := 1.0
	if 1+sigma != 0 {
		factor = 1 / (1 + sigma)
	}

	rx := p.Rx * arcSecToRad
	ry := p.Ry * arcSecToRad
	rz := p.Rz * arcSecToRad

	// r x dxyz, the rotation-coupling correction on the translation.
	corrX := ry*p.Dz - rz*p.Dy
	corrY := rz*p.Dx - rx*p.Dz
	corrZ := rx*p.Dy - ry*p.Dx

	dx := -(p.Dx + corrX) * factor
	dy := -(p.Dy + corrY) * factor
	dz := -(p.Dz + corrZ) * factor

	return DatumTransform{
		Dx: dx, Dy: dy, Dz: dz,
		Rx: -p.Rx, Ry: -p.Ry, Rz: -p.Rz,
		ScalePPM: -p.ScalePPM,
	}
}
