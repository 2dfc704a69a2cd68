package geodatum

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// UtmPoint is a Universal Transverse Mercator point: zone, latitude
// band letter, projected easting/northing (with false offsets already
// applied). Convergence and PointScale are not computed by Forward and
// are left at zero.
type UtmPoint struct {
	Zone        int
	Band        byte
	Easting     float64
	Northing    float64
	Convergence float64
	PointScale  float64
	Datum       Datum
}

const (
	utmK0           = 0.9996
	utmFalseEasting = 500000.0
	utmFalseNorth   = 10000000.0
	utmMinEasting   = 100000.0
	utmMaxEasting   = 900000.0
)

var latBandLetters = "CDEFGHJKLMNPQRSTUVWX"

// utmZone computes the UTM longitudinal zone 1..60 for a geographic
// point, applying the Norway/Svalbard exceptions.
func utmZone(lon, lat float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		zone = 32
	}
	if lat >= 72 && lat < 84 {
		switch {
		case lon >= 0 && lon < 9:
			zone = 31
		case lon >= 9 && lon < 21:
			zone = 33
		case lon >= 21 && lon < 33:
			zone = 35
		case lon >= 33 && lon < 42:
			zone = 37
		}
	}
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

// utmBand returns the 8-degree latitude band letter for a latitude in
// degrees, C (-80) through X (72-84, 12 degrees wide).
func utmBand(lat float64) byte {
	if lat < -80 {
		return 'C'
	}
	if lat > 84 {
		return 'X'
	}
	idx := int((lat + 80) / 8)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(latBandLetters) {
		idx = len(latBandLetters) - 1
	}
	return latBandLetters[idx]
}

// utmCentralMeridian returns the central meridian of a UTM zone, in
// degrees.
func utmCentralMeridian(zone int) float64 {
	return float64((zone-1)*6) - 180 + 3
}

// UTM is a UTM projector bound to one ellipsoid; it lazily builds and
// caches the TransverseMercator core for each of the 60 zones.
type UTM struct {
	ellipsoid Ellipsoid
	zones     [61]*TransverseMercator
}

// NewUTM constructs a UTM projector for the given ellipsoid.
func NewUTM(ellipsoid Ellipsoid) (*UTM, error) {
	if ellipsoid.A <= 0 {
		return nil, newErr(ErrInvalidInput, "semi-major axis must be positive")
	}
	return &UTM{ellipsoid: ellipsoid}, nil
}

func (u *UTM) tmForZone(zone int) (*TransverseMercator, error) {
	if zone < 1 || zone > 60 {
		return nil, newErr(ErrInvalidUTMZone, "zone %d out of range [1,60]", zone)
	}
	if u.zones[zone] != nil {
		return u.zones[zone], nil
	}
	lambda0 := utmCentralMeridian(zone) * math.Pi / 180
	tm, err := NewTransverseMercator(u.ellipsoid, lambda0, 0, utmFalseEasting, 0, utmK0)
	if err != nil {
		return nil, err
	}
	u.zones[zone] = tm
	return tm, nil
}

// Forward projects a geographic point to UTM.
func (u *UTM) Forward(geodetic s2.LatLng, datum Datum) (UtmPoint, error) {
	lat := geodetic.Lat.Degrees()
	lon := geodetic.Lng.Degrees()
	if err := validateLat(lat); err != nil {
		return UtmPoint{}, err
	}
	if err := validateLon(lon); err != nil {
		return UtmPoint{}, err
	}
	zone := utmZone(lon, lat)
	band := utmBand(lat)
	tm, err := u.tmForZone(zone)
	if err != nil {
		return UtmPoint{}, err
	}
	easting, northing := tm.Forward(geodetic.Lat.Radians(), geodetic.Lng.Radians())
	if lat < 0 {
		northing += utmFalseNorth
	}
	if easting < utmMinEasting || easting > utmMaxEasting {
		return UtmPoint{}, newErr(ErrOutOfRange, "easting %v out of range", easting)
	}
	return UtmPoint{
		Zone:     zone,
		Band:     band,
		Easting:  easting,
		Northing: northing,
		Datum:    datum,
	}, nil
}

// Inverse recovers the geographic point from a UtmPoint.
func (u *UTM) Inverse(p UtmPoint) (s2.LatLng, error) {
	if p.Zone < 1 || p.Zone > 60 {
		return s2.LatLng{}, newErr(ErrInvalidUTMZone, "zone %d out of range [1,60]", p.Zone)
	}
	if p.Easting < utmMinEasting || p.Easting > utmMaxEasting {
		return s2.LatLng{}, newErr(ErrOutOfRange, "easting %v out of range", p.Easting)
	}
	southern := p.Band < 'N'
	if southern {
		if p.Northing < 0 || p.Northing > utmFalseNorth {
			return s2.LatLng{}, newErr(ErrOutOfRange, "northing %v out of range for southern hemisphere", p.Northing)
		}
	} else {
		if p.Northing < 0 || p.Northing > utmFalseNorth {
			return s2.LatLng{}, newErr(ErrOutOfRange, "northing %v out of range for northern hemisphere", p.Northing)
		}
	}

	tm, err := u.tmForZone(p.Zone)
	if err != nil {
		return s2.LatLng{}, err
	}
	northing := p.Northing
	if southern {
		northing -= utmFalseNorth
	}
	phi, lambda, err := tm.Inverse(p.Easting, northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}, nil
}
