package geodatum

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// MgrsPoint is a Military Grid Reference System point: UTM zone and
// latitude band, a two-letter 100km grid square, and intra-square
// easting/northing in [0, 99999].
type MgrsPoint struct {
	Zone     int
	Band     byte
	Col      byte
	Row      byte
	Easting  float64
	Northing float64
	Datum    Datum
}

// lettersNoIO24/20 are the column/row alphabets used by MGRS, each
// skipping I and O to avoid confusion with 1 and 0.
const (
	lettersNoIO24 = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lettersNoIO20 = "ABCDEFGHJKLMNPQRSTUV"
)

// colSetOrigins holds the origin letter of the 6-set column cycle
// "AJSAJS", indexed by (zone-1)%6.
var colSetOrigins = [6]byte{'A', 'J', 'S', 'A', 'J', 'S'}

func indexOf(alphabet string, b byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == b {
			return i
		}
	}
	return -1
}

// mgrsColLetter returns the column letter for a zone and col_100k
// (1-based), stepping through the 24-letter alphabet from the zone's
// set origin.
func mgrsColLetter(zone, col100k int) byte {
	originIdx := indexOf(lettersNoIO24, colSetOrigins[(zone-1)%6])
	idx := ((originIdx + col100k - 1) % 24 + 24) % 24
	return lettersNoIO24[idx]
}

// mgrsColIndex inverts mgrsColLetter, returning col_100k.
func mgrsColIndex(zone int, letter byte) (int, error) {
	originIdx := indexOf(lettersNoIO24, colSetOrigins[(zone-1)%6])
	letterIdx := indexOf(lettersNoIO24, letter)
	if letterIdx < 0 {
		return 0, newErr(ErrInvalidCoord, "invalid MGRS column letter %q", letter)
	}
	steps := ((letterIdx - originIdx) % 24 + 24) % 24
	return steps + 1, nil
}

// mgrsRowOffset returns the odd/even-zone row offset: for the northern
// hemisphere (band >= 'N') odd zones use 0 and even zones use 5; the
// parity is reversed south of the equator.
func mgrsRowOffset(zone int, band byte) int {
	odd := zone%2 == 1
	north := band >= 'N'
	switch {
	case north && odd:
		return 0
	case north && !odd:
		return 5
	case !north && odd:
		return 5
	default:
		return 0
	}
}

func mgrsRowLetter(zone int, band byte, row100k int) byte {
	offset := mgrsRowOffset(zone, band)
	idx := ((row100k+offset)%20 + 20) % 20
	return lettersNoIO20[idx]
}

// MGRS is the MGRS encoder/decoder, built over a UTM projector for a
// given ellipsoid.
type MGRS struct {
	ellipsoid Ellipsoid
	utm       *UTM
}

// NewMGRS constructs an MGRS encoder/decoder for the given ellipsoid.
func NewMGRS(ellipsoid Ellipsoid) (*MGRS, error) {
	utm, err := NewUTM(ellipsoid)
	if err != nil {
		return nil, err
	}
	return &MGRS{ellipsoid: ellipsoid, utm: utm}, nil
}

// Forward encodes a geographic point into an MgrsPoint.
func (m *MGRS) Forward(geodetic s2.LatLng, datum Datum) (MgrsPoint, error) {
	utmPt, err := m.utm.Forward(geodetic, datum)
	if err != nil {
		return MgrsPoint{}, err
	}

	trueNorthing := utmPt.Northing
	if utmPt.Band < 'N' {
		trueNorthing -= utmFalseNorth
	}

	col100k := int(math.Floor(utmPt.Easting / 100000))
	row100k := int(math.Floor(trueNorthing / 100000))

	col := mgrsColLetter(utmPt.Zone, col100k)
	row := mgrsRowLetter(utmPt.Zone, utmPt.Band, row100k)

	eastingRem := math.Mod(utmPt.Easting, 100000)
	northingRem := math.Mod(trueNorthing, 100000)
	if northingRem < 0 {
		northingRem += 100000
	}
	if eastingRem < 0 {
		eastingRem += 100000
	}

	return MgrsPoint{
		Zone:     utmPt.Zone,
		Band:     utmPt.Band,
		Col:      col,
		Row:      row,
		Easting:  eastingRem,
		Northing: northingRem,
		Datum:    datum,
	}, nil
}

// Inverse decodes an MgrsPoint back to a geographic point.
// The 2,000,000 m row-letter cycle is disambiguated using the band's
// approximate central-latitude northing, computed on each call.
func (m *MGRS) Inverse(p MgrsPoint) (s2.LatLng, error) {
	col100k, err := mgrsColIndex(p.Zone, p.Col)
	if err != nil {
		return s2.LatLng{}, err
	}
	rowIdx := indexOf(lettersNoIO20, p.Row)
	if rowIdx < 0 {
		return s2.LatLng{}, newErr(ErrInvalidCoord, "invalid MGRS row letter %q", p.Row)
	}
	offset := mgrsRowOffset(p.Zone, p.Band)
	base := rowIdx - offset

	tm, err := m.utm.tmForZone(p.Zone)
	if err != nil {
		return s2.LatLng{}, err
	}
	bandCenter := bandCenterLat(p.Band)
	lambda0 := utmCentralMeridian(p.Zone) * math.Pi / 180
	_, approxNorthing := tm.Forward(bandCenter*math.Pi/180, lambda0)

	best := base
	bestDiff := math.Inf(1)
	for k := -3; k <= 3; k++ {
		candidate := base + 20*k
		diff := math.Abs(float64(candidate)*100000 - approxNorthing)
		if diff < bestDiff {
			bestDiff = diff
			best = candidate
		}
	}
	row100k := best

	easting := float64(col100k)*100000 + p.Easting
	trueNorthing := float64(row100k)*100000 + p.Northing
	northing := trueNorthing
	if p.Band < 'N' {
		northing += utmFalseNorth
	}

	return m.utm.Inverse(UtmPoint{Zone: p.Zone, Band: p.Band, Easting: easting, Northing: northing})
}

// bandCenterLat returns the approximate central latitude of an 8-degree
// UTM latitude band letter, used only to disambiguate the MGRS row
// cycle during decode.
func bandCenterLat(band byte) float64 {
	idx := indexOf(latBandLetters, band)
	if idx < 0 {
		return 0
	}
	south := -80 + float64(idx)*8
	return south + 4
}

func (p MgrsPoint) String() string {
	return fmt.Sprintf("%d%c %c%c %05.0f %05.0f", p.Zone, p.Band, p.Col, p.Row, p.Easting, p.Northing)
}
