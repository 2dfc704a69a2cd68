package geodatum

// contextState is the Context lifecycle: Uninitialized is never
// externally observable (NewContext always returns an Active
// instance), Active accepts every operation, Destroyed is terminal.
type contextState int

const (
	stateUninitialized contextState = iota
	stateActive
	stateDestroyed
)

// Context is the single-threaded holder of an active ellipsoid, the
// per-pair datum transform table, and a geodesic handle. It owns all
// of its interior resources and must be explicitly destroyed.
type Context struct {
	state contextState

	datum     Datum
	ellipsoid Ellipsoid

	utm         *UTM
	mgrs        *MGRS
	britishGrid *BritishGrid
	japanGrid   *JapanGrid
	geodesic    *Geodesic

	transforms map[[2]Datum]DatumTransform

	onError ErrorCallback
}

// NewContext creates an Active Context seeded with WGS84 and the
// default transform parameter table. Allocation failure (exhausted by
// the underlying projector constructors) is reported through the
// optional error callback, since it happens outside the normal
// error-return path for every later operation.
func NewContext(onError ErrorCallback) (*Context, error) {
	ctx := &Context{
		state:      stateActive,
		onError:    onError,
		transforms: make(map[[2]Datum]DatumTransform, len(defaultTransforms)),
	}
	for k, v := range defaultTransforms {
		ctx.transforms[k] = v
	}

	if err := ctx.initEllipsoid(WGS84); err != nil {
		if onError != nil {
			onError(ErrMemory, err.Error())
		}
		return nil, newErr(ErrMemory, "%s", err.Error())
	}
	bg, err := NewBritishGrid()
	if err != nil {
		if onError != nil {
			onError(ErrMemory, err.Error())
		}
		return nil, newErr(ErrMemory, "%s", err.Error())
	}
	jg, err := NewJapanGrid()
	if err != nil {
		if onError != nil {
			onError(ErrMemory, err.Error())
		}
		return nil, newErr(ErrMemory, "%s", err.Error())
	}
	ctx.britishGrid = bg
	ctx.japanGrid = jg
	return ctx, nil
}

func (c *Context) initEllipsoid(d Datum) error {
	e, err := EllipsoidOf(d)
	if err != nil {
		return err
	}
	utm, err := NewUTM(e)
	if err != nil {
		return err
	}
	mgrs, err := NewMGRS(e)
	if err != nil {
		return err
	}
	c.datum = d
	c.ellipsoid = e
	c.utm = utm
	c.mgrs = mgrs
	c.geodesic = NewGeodesic(e)
	return nil
}

func (c *Context) checkActive() error {
	if c.state != stateActive {
		return newErr(ErrInvalidInput, "context is not active")
	}
	return nil
}

// SetDatum mutates the context's active ellipsoid, re-initializing the
// UTM/MGRS projectors and the geodesic handle for it.
func (c *Context) SetDatum(d Datum) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	return c.initEllipsoid(d)
}

// SetCustomEllipsoid overrides the active ellipsoid with caller-
// supplied parameters, re-initializing projectors and the geodesic
// handle the same way SetDatum does.
func (c *Context) SetCustomEllipsoid(a, f float64) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	e, err := NewEllipsoid("custom", a, f)
	if err != nil {
		return err
	}
	utm, err := NewUTM(e)
	if err != nil {
		return err
	}
	mgrs, err := NewMGRS(e)
	if err != nil {
		return err
	}
	c.ellipsoid = e
	c.utm = utm
	c.mgrs = mgrs
	c.geodesic = NewGeodesic(e)
	return nil
}

// Destroy transitions the Context to Destroyed. Any further use fails
// with InvalidInput.
func (c *Context) Destroy() {
	c.state = stateDestroyed
}

// SetTransformParams installs a forward datum transform (from -> to)
// and derives and installs its paired reverse entry.
func (c *Context) SetTransformParams(from, to Datum, p DatumTransform) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.transforms[[2]Datum{from, to}] = p
	c.transforms[[2]Datum{to, from}] = reverseTransform(p)
	return nil
}

// GetTransformParams returns the transform registered from -> to. If
// only the paired reverse direction was explicitly set, it is derived
// on the fly. Identity is returned (not an error) for any pair with no
// registered parameters, per the "all zeros means identity" contract.
func (c *Context) GetTransformParams(from, to Datum) (DatumTransform, error) {
	if err := c.checkActive(); err != nil {
		return DatumTransform{}, err
	}
	from, to = canonicalDatum(from), canonicalDatum(to)
	if from == to {
		return DatumTransform{}, nil
	}
	if p, ok := c.transforms[[2]Datum{from, to}]; ok {
		return p, nil
	}
	if p, ok := c.transforms[[2]Datum{to, from}]; ok {
		return reverseTransform(p), nil
	}
	return DatumTransform{}, nil
}

// shiftDatum moves g onto the target datum, short-circuiting identity
// pairs (including same-datum and the pseudo-datum aliases) to a pure
// retag.
func (c *Context) shiftDatum(g GeoCoord, target Datum) (GeoCoord, error) {
	target = canonicalDatum(target)
	g.Datum = canonicalDatum(g.Datum)
	if g.Datum == target {
		g.Datum = target
		return g, nil
	}
	p, err := c.GetTransformParams(g.Datum, target)
	if err != nil {
		return GeoCoord{}, err
	}
	if p.IsIdentity() {
		g.Datum = target
		return g, nil
	}
	fromE, err := EllipsoidOf(g.Datum)
	if err != nil {
		return GeoCoord{}, newErr(ErrDatumTransform, "unknown source datum: %s", err.Error())
	}
	toE, err := EllipsoidOf(target)
	if err != nil {
		return GeoCoord{}, newErr(ErrDatumTransform, "unknown target datum: %s", err.Error())
	}
	lat2, lon2, alt2 := TransformPoint(fromE, toE, g.Lat, g.Lon, g.Alt, p)
	return GeoCoord{Lat: lat2, Lon: lon2, Alt: alt2, Datum: target}, nil
}

// ToUTM shifts g to the context's active datum if needed and projects
// to UTM.
func (c *Context) ToUTM(g GeoCoord) (UtmPoint, error) {
	if err := c.checkActive(); err != nil {
		return UtmPoint{}, err
	}
	shifted, err := c.shiftDatum(g, c.datum)
	if err != nil {
		return UtmPoint{}, err
	}
	return c.utm.Forward(shifted.LatLng(), c.datum)
}

// FromUTM inverse-projects a UtmPoint (assumed to be on the context's
// active datum) and shifts the result to targetDatum.
func (c *Context) FromUTM(p UtmPoint, targetDatum Datum) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	ll, err := c.utm.Inverse(p)
	if err != nil {
		return GeoCoord{}, err
	}
	g := geoCoordFromLatLng(ll, 0, c.datum)
	return c.shiftDatum(g, targetDatum)
}

// ToMGRS shifts g to the context's active datum if needed and encodes
// it as MGRS.
func (c *Context) ToMGRS(g GeoCoord) (MgrsPoint, error) {
	if err := c.checkActive(); err != nil {
		return MgrsPoint{}, err
	}
	shifted, err := c.shiftDatum(g, c.datum)
	if err != nil {
		return MgrsPoint{}, err
	}
	return c.mgrs.Forward(shifted.LatLng(), c.datum)
}

// FromMGRS decodes an MgrsPoint (assumed to be on the context's active
// datum) and shifts the result to targetDatum.
func (c *Context) FromMGRS(p MgrsPoint, targetDatum Datum) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	ll, err := c.mgrs.Inverse(p)
	if err != nil {
		return GeoCoord{}, err
	}
	g := geoCoordFromLatLng(ll, 0, c.datum)
	return c.shiftDatum(g, targetDatum)
}

// ToBritishGrid shifts g to OSGB36 and projects it to the British
// National Grid, regardless of the context's active datum.
func (c *Context) ToBritishGrid(g GeoCoord) (BritishGridPoint, error) {
	if err := c.checkActive(); err != nil {
		return BritishGridPoint{}, err
	}
	shifted, err := c.shiftDatum(g, OSGB36)
	if err != nil {
		return BritishGridPoint{}, err
	}
	return c.britishGrid.Forward(shifted.LatLng())
}

// FromBritishGrid inverse-projects a BritishGridPoint (always OSGB36)
// and shifts the result to targetDatum.
func (c *Context) FromBritishGrid(p BritishGridPoint, targetDatum Datum) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	ll, err := c.britishGrid.Inverse(p)
	if err != nil {
		return GeoCoord{}, err
	}
	g := geoCoordFromLatLng(ll, 0, OSGB36)
	return c.shiftDatum(g, targetDatum)
}

// ToJapanGrid shifts g to Tokyo and projects it to the Japan
// Plane-Rectangular Grid, regardless of the context's active datum.
func (c *Context) ToJapanGrid(g GeoCoord) (JapanGridPoint, error) {
	if err := c.checkActive(); err != nil {
		return JapanGridPoint{}, err
	}
	shifted, err := c.shiftDatum(g, Tokyo)
	if err != nil {
		return JapanGridPoint{}, err
	}
	return c.japanGrid.Forward(shifted.LatLng())
}

// FromJapanGrid inverse-projects a JapanGridPoint (always Tokyo) and
// shifts the result to targetDatum.
func (c *Context) FromJapanGrid(p JapanGridPoint, targetDatum Datum) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	ll, err := c.japanGrid.Inverse(p)
	if err != nil {
		return GeoCoord{}, err
	}
	g := geoCoordFromLatLng(ll, 0, Tokyo)
	return c.shiftDatum(g, targetDatum)
}

// ConvertDatum shifts g from its own datum to targetDatum; it is a thin
// wrapper over shiftDatum kept exported because the dispatcher
// contract names it.
func (c *Context) ConvertDatum(g GeoCoord, targetDatum Datum) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	return c.shiftDatum(g, targetDatum)
}

// Distance solves the inverse geodesic problem between p1 and p2,
// shifting p2 onto p1's datum first if they differ.
func (c *Context) Distance(p1, p2 GeoCoord) (GeodesicResult, error) {
	if err := c.checkActive(); err != nil {
		return GeodesicResult{}, err
	}
	if p2.Datum != p1.Datum {
		shifted, err := c.shiftDatum(p2, p1.Datum)
		if err != nil {
			return GeodesicResult{}, err
		}
		p2 = shifted
	}
	g := NewGeodesic(c.ellipsoidFor(p1.Datum))
	return g.Inverse(p1.Lat, p1.Lon, p2.Lat, p2.Lon), nil
}

// Direct solves the direct geodesic problem: destination point from a
// start point, azimuth (degrees) and distance (meters, >= 0).
// end.Datum is start.Datum.
func (c *Context) Direct(start GeoCoord, azimuth, distance float64) (GeoCoord, error) {
	if err := c.checkActive(); err != nil {
		return GeoCoord{}, err
	}
	if distance < 0 {
		return GeoCoord{}, newErr(ErrInvalidInput, "distance must be non-negative, got %v", distance)
	}
	g := NewGeodesic(c.ellipsoidFor(start.Datum))
	lat2, lon2, _ := g.Direct(start.Lat, start.Lon, azimuth, distance)
	return GeoCoord{Lat: lat2, Lon: lon2, Alt: start.Alt, Datum: start.Datum}, nil
}

func (c *Context) ellipsoidFor(d Datum) Ellipsoid {
	if d == c.datum {
		return c.ellipsoid
	}
	e, err := EllipsoidOf(d)
	if err != nil {
		return c.ellipsoid
	}
	return e
}

// Convert is the Format Dispatcher: it shifts source to targetDatum if
// needed, projects/formats to targetFormat, and returns the rendered
// string per the textual contract in the external interfaces. British
// Grid and Japan Grid ignore targetDatum and always project from OSGB36
// and Tokyo respectively.
func (c *Context) Convert(source GeoCoord, targetFormat CoordFormat, targetDatum Datum) (string, error) {
	if err := c.checkActive(); err != nil {
		return "", err
	}

	switch targetFormat {
	case FormatDD, FormatDMM, FormatDMS:
		shifted, err := c.shiftDatum(source, targetDatum)
		if err != nil {
			return "", err
		}
		switch targetFormat {
		case FormatDD:
			return formatDD(shifted.Lat, shifted.Lon), nil
		case FormatDMM:
			return formatDMM(shifted.Lat, shifted.Lon), nil
		default:
			return formatDMS(shifted.Lat, shifted.Lon), nil
		}
	case FormatUTM:
		if canonicalDatum(targetDatum) != c.datum {
			if err := c.SetDatum(canonicalDatum(targetDatum)); err != nil {
				return "", err
			}
		}
		p, err := c.ToUTM(source)
		if err != nil {
			return "", err
		}
		return formatUTM(p), nil
	case FormatMGRS:
		if canonicalDatum(targetDatum) != c.datum {
			if err := c.SetDatum(canonicalDatum(targetDatum)); err != nil {
				return "", err
			}
		}
		p, err := c.ToMGRS(source)
		if err != nil {
			return "", err
		}
		return formatMGRS(p), nil
	case FormatBritishGrid:
		p, err := c.ToBritishGrid(source)
		if err != nil {
			return "", err
		}
		return formatBritishGrid(p), nil
	case FormatJapanGrid:
		p, err := c.ToJapanGrid(source)
		if err != nil {
			return "", err
		}
		return formatJapanGrid(p), nil
	default:
		return "", newErr(ErrUnsupportedFormat, "format %v", targetFormat)
	}
}
