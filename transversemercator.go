package geodatum

import (
	"errors"
	"math"
)

// TransverseMercator provides conversions between geodetic coordinates
// (latitude and longitude) and Transverse Mercator projection
// coordinates (easting and northing), parameterized by ellipsoid,
// central meridian, scale factor, false easting/northing and latitude
// of origin. UTM, British Grid and Japan Grid each hold one of these
// configured for their own constants.
type TransverseMercator struct {
	ellipsoid Ellipsoid
	arc       meridionalArcConstants

	originLat     float64 // radians
	originLong    float64 // radians
	falseEasting  float64
	falseNorthing float64
	scaleFactor   float64

	mOrigin float64 // M(originLat), cached
}

// NewTransverseMercator constructs a TransverseMercator converter. All
// angles are in radians.
func NewTransverseMercator(ellipsoid Ellipsoid, centralMeridian, latitudeOfOrigin,
	falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {
	if ellipsoid.A <= 0 {
		return nil, errors.New("semi-major axis must be greater than zero")
	}
	if latitudeOfOrigin < -math.Pi/2 || latitudeOfOrigin > math.Pi/2 {
		return nil, errors.New("latitude of origin out of range")
	}
	if centralMeridian < -math.Pi || centralMeridian > math.Pi {
		return nil, errors.New("central meridian out of range")
	}
	const minScale, maxScale = 0.1, 10.0
	if scaleFactor < minScale || scaleFactor > maxScale {
		return nil, errors.New("scale factor out of range")
	}

	t := &TransverseMercator{
		ellipsoid:     ellipsoid,
		arc:           meridionalConstants(ellipsoid),
		originLat:     latitudeOfOrigin,
		originLong:    centralMeridian,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		scaleFactor:   scaleFactor,
	}
	t.mOrigin = meridionalArc(ellipsoid, latitudeOfOrigin)
	return t, nil
}

// Forward projects geodetic (phi, lambda), both radians, to (easting,
// northing) meters per the Snyder 6th-order Transverse Mercator series.
func (t *TransverseMercator) Forward(phi, lambda float64) (easting, northing float64) {
	e2 := t.ellipsoid.E2
	a := t.ellipsoid.A

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	tanPhi := sinPhi / cosPhi

	N := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	T := tanPhi * tanPhi
	C := e2 * cosPhi * cosPhi / (1 - e2)
	dLambda := lambda - t.originLong
	// keep the longitude difference in (-pi, pi]
	for dLambda > math.Pi {
		dLambda -= 2 * math.Pi
	}
	for dLambda < -math.Pi {
		dLambda += 2 * math.Pi
	}
	A := dLambda * cosPhi

	A2 := A * A
	A3 := A2 * A
	A4 := A2 * A2
	A5 := A4 * A
	A6 := A4 * A2

	M := meridionalArc(t.ellipsoid, phi)

	easting = t.falseEasting + t.scaleFactor*N*(A+(1-T+C)*A3/6+
		(5-18*T+T*T+72*C-58*t.ellipsoid.Ep2)*A5/120)

	northing = t.falseNorthing + t.scaleFactor*(M-t.mOrigin+N*tanPhi*(A2/2+
		(5-T+9*C+4*C*C)*A4/24+
		(61-58*T+T*T+600*C-330*t.ellipsoid.Ep2)*A6/720))

	return easting, northing
}

// Inverse recovers geodetic (phi, lambda), both radians, from projected
// (easting, northing) meters, via the standard footpoint-latitude
// series in e1.
func (t *TransverseMercator) Inverse(easting, northing float64) (phi, lambda float64, err error) {
	e2 := t.ellipsoid.E2
	a := t.ellipsoid.A

	M := t.mOrigin + (northing-t.falseNorthing)/t.scaleFactor
	mu := M / (a * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	e1_2 := e1 * e1
	e1_3 := e1_2 * e1
	e1_4 := e1_3 * e1

	phi1 := mu +
		(3*e1/2-27*e1_3/32)*math.Sin(2*mu) +
		(21*e1_2/16-55*e1_4/32)*math.Sin(4*mu) +
		(151*e1_3/96)*math.Sin(6*mu) +
		(1097*e1_4/512)*math.Sin(8*mu)

	return t.finishInverse(phi1, easting)
}

// InverseNewton recovers geodetic (phi, lambda) the way British Grid
// does: the footpoint latitude is found by a bounded Newton iteration
// on the meridional arc instead of the e1 trig series, terminating
// when |delta phi| < 1e-12 or after maxIter steps. iterations reports
// how many steps were taken, for callers that want to observe the
// residual at the cap.
func (t *TransverseMercator) InverseNewton(easting, northing float64, maxIter int) (phi, lambda float64, iterations int, err error) {
	e2 := t.ellipsoid.E2
	a := t.ellipsoid.A

	target := t.mOrigin + (northing-t.falseNorthing)/t.scaleFactor

	phi1 := t.originLat
	for iterations = 0; iterations < maxIter; iterations++ {
		m := meridionalArc(t.ellipsoid, phi1)
		sinPhi1 := math.Sin(phi1)
		radiusOfCurvature := a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
		delta := (target - m) / radiusOfCurvature
		phi1 += delta
		if math.Abs(delta) < 1e-12 {
			iterations++
			break
		}
	}

	p, l, ferr := t.finishInverse(phi1, easting)
	return p, l, iterations, ferr
}

// finishInverse applies the shared closed-form D-series correction to
// a footpoint latitude phi1, however it was obtained.
func (t *TransverseMercator) finishInverse(phi1, easting float64) (phi, lambda float64, err error) {
	e2 := t.ellipsoid.E2
	a := t.ellipsoid.A

	sinPhi1, cosPhi1 := math.Sin(phi1), math.Cos(phi1)
	tanPhi1 := sinPhi1 / cosPhi1

	C1 := e2 * cosPhi1 * cosPhi1 / (1 - e2)
	T1 := tanPhi1 * tanPhi1
	N1 := a / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	R1 := a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	if R1 == 0 {
		return 0, 0, newErr(ErrCalculation, "degenerate meridional radius of curvature")
	}
	D := (easting - t.falseEasting) / (N1 * t.scaleFactor)

	D2 := D * D
	D3 := D2 * D
	D4 := D2 * D2
	D5 := D4 * D
	D6 := D4 * D2

	phi = phi1 - (N1*tanPhi1/R1)*(D2/2-
		(5+3*T1+10*C1-4*C1*C1-9*t.ellipsoid.Ep2)*D4/24+
		(61+90*T1+298*C1+45*T1*T1-252*t.ellipsoid.Ep2-3*C1*C1)*D6/720)

	lambda = t.originLong + (D-(1+2*T1+C1)*D3/6+
		(5-2*C1+28*T1-3*C1*C1+8*t.ellipsoid.Ep2+24*T1*T1)*D5/120)/cosPhi1

	return phi, lambda, nil
}
