package geodatum

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	britishOriginLat  = 49.0
	britishOriginLong = -2.0
	britishFalseEast  = 400000.0
	britishFalseNorth = -100000.0
	britishK0         = 0.9996012717
	britishMaxIter    = 10
)

// gridLetters25 is the 25-letter alphabet (I skipped) used for British
// Grid 500km/100km square lettering.
const gridLetters25 = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// BritishGridPoint is a British National Grid reference: a two-letter
// 100km-square code plus intra-square easting/northing, always on
// OSGB36.
type BritishGridPoint struct {
	EastLetter  byte
	NorthLetter byte
	Easting     float64
	Northing    float64
}

// BritishGrid projects geographic points to and from the British
// National Grid. It always operates on OSGB36/Airy 1830; callers on
// other datums are shifted in by the Format Dispatcher.
type BritishGrid struct {
	tm *TransverseMercator
}

// NewBritishGrid constructs a British Grid projector bound to the
// Airy 1830 ellipsoid.
func NewBritishGrid() (*BritishGrid, error) {
	airy, err := EllipsoidOf(OSGB36)
	if err != nil {
		return nil, err
	}
	tm, err := NewTransverseMercator(airy,
		britishOriginLong*math.Pi/180, britishOriginLat*math.Pi/180,
		britishFalseEast, britishFalseNorth, britishK0)
	if err != nil {
		return nil, err
	}
	return &BritishGrid{tm: tm}, nil
}

func gridLetterIndex(easting, northing float64) (eLetter, nLetter byte) {
	e500 := int(math.Floor(easting / 500000))
	e100 := int(math.Floor(easting/100000)) - e500*5
	n500 := int(math.Floor(northing / 500000))
	n100 := int(math.Floor(northing/100000)) - n500*5
	if e500 < 0 {
		e500 += 25
	}
	if n500 < 0 {
		n500 += 25
	}
	eIdx := ((e500*5+e100)%25 + 25) % 25
	nIdx := ((n500*5+n100)%25 + 25) % 25
	return gridLetters25[eIdx], gridLetters25[nIdx]
}

// Forward projects a geographic point (already on OSGB36) to a
// BritishGridPoint.
func (g *BritishGrid) Forward(geodetic s2.LatLng) (BritishGridPoint, error) {
	if err := validateLat(geodetic.Lat.Degrees()); err != nil {
		return BritishGridPoint{}, err
	}
	easting, northing := g.tm.Forward(geodetic.Lat.Radians(), geodetic.Lng.Radians())

	eLetter, nLetter := gridLetterIndex(easting, northing)
	eRem := math.Mod(easting, 100000)
	nRem := math.Mod(northing, 100000)
	if eRem < 0 {
		eRem += 100000
	}
	if nRem < 0 {
		nRem += 100000
	}

	return BritishGridPoint{
		EastLetter:  eLetter,
		NorthLetter: nLetter,
		Easting:     eRem,
		Northing:    nRem,
	}, nil
}

// Inverse recovers a geographic point (on OSGB36) from a
// BritishGridPoint, using the iterative Newton footpoint solver
// instead of the e1 series. Letters in the fifth 500km column/row
// (indices 20-24) decode to the square just west/south of the false
// origin, so decoded grid values lie in [-500km, 2000km).
func (g *BritishGrid) Inverse(p BritishGridPoint) (s2.LatLng, error) {
	eIdx := indexOf(gridLetters25, p.EastLetter)
	nIdx := indexOf(gridLetters25, p.NorthLetter)
	if eIdx < 0 || nIdx < 0 {
		return s2.LatLng{}, newErr(ErrInvalidCoord, "invalid British Grid letters %q%q", p.EastLetter, p.NorthLetter)
	}
	e500, e100 := eIdx/5, eIdx%5
	n500, n100 := nIdx/5, nIdx%5
	if e500 == 4 {
		e500 = -1
	}
	if n500 == 4 {
		n500 = -1
	}

	easting := float64(e500)*500000 + float64(e100)*100000 + p.Easting
	northing := float64(n500)*500000 + float64(n100)*100000 + p.Northing

	phi, lambda, _, err := g.tm.InverseNewton(easting, northing, britishMaxIter)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}, nil
}

func (p BritishGridPoint) String() string {
	return fmt.Sprintf("%c%c %.0f %.0f", p.EastLetter, p.NorthLetter, p.Easting, p.Northing)
}
