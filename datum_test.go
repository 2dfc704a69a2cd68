package geodatum

import "testing"

func TestEllipsoidOfKnownDatums(t *testing.T) {
	cases := []struct {
		d    Datum
		a, f float64
	}{
		{WGS84, 6378137.0, 1 / 298.257223563},
		{NAD83, 6378137.0, 1 / 298.257222101},
		{NAD27, 6378206.4, 1 / 294.9786982},
		{ED50, 6378388.0, 1 / 297.0},
		{Tokyo, 6377397.155, 1 / 299.1528128},
		{OSGB36, 6377563.396, 1 / 299.3249646},
	}
	for _, c := range cases {
		e, err := EllipsoidOf(c.d)
		if err != nil {
			t.Fatalf("EllipsoidOf(%v): %s", c.d, err)
		}
		if e.A != c.a || e.F != c.f {
			t.Errorf("EllipsoidOf(%v) = {a=%v f=%v}, want {a=%v f=%v}", c.d, e.A, e.F, c.a, c.f)
		}
	}
}

func TestEllipsoidOfUnknownDatum(t *testing.T) {
	if _, err := EllipsoidOf(Datum(999)); err == nil {
		t.Fatal("expected error for unknown datum")
	}
}

func TestNewEllipsoidValidation(t *testing.T) {
	if _, err := NewEllipsoid("bad-a", -1, 0.01); err == nil {
		t.Fatal("expected error for non-positive semi-major axis")
	}
	if _, err := NewEllipsoid("bad-f", 6378137, 1.5); err == nil {
		t.Fatal("expected error for flattening out of range")
	}
	e, err := NewEllipsoid("ok", 6378137, 1.0/298.257223563)
	if err != nil {
		t.Fatalf("NewEllipsoid: %s", err)
	}
	if e.B >= e.A {
		t.Errorf("semi-minor axis %v should be less than semi-major %v", e.B, e.A)
	}
}

func TestCanonicalDatum(t *testing.T) {
	if canonicalDatum(MGRSGrid) != WGS84 {
		t.Error("MGRSGrid should canonicalize to WGS84")
	}
	if canonicalDatum(UTMGrid) != WGS84 {
		t.Error("UTMGrid should canonicalize to WGS84")
	}
	if canonicalDatum(NAD27) != NAD27 {
		t.Error("NAD27 should be unchanged")
	}
}
