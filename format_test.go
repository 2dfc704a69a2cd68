package geodatum

import "testing"

func TestFormatDD(t *testing.T) {
	got := formatDD(31.230416, 121.473701)
	want := "31.230416°N, 121.473701°E"
	if got != want {
		t.Errorf("formatDD = %q, want %q", got, want)
	}
}

func TestFormatDDSouthWest(t *testing.T) {
	got := formatDD(-33.87, -70.5)
	want := "33.870000°S, 70.500000°W"
	if got != want {
		t.Errorf("formatDD = %q, want %q", got, want)
	}
}

func TestFormatUTM(t *testing.T) {
	p := UtmPoint{Zone: 51, Band: 'R', Easting: 447600, Northing: 4419300}
	got := formatUTM(p)
	want := "51R 447600E 4419300N"
	if got != want {
		t.Errorf("formatUTM = %q, want %q", got, want)
	}
}

func TestFormatMGRS(t *testing.T) {
	p := MgrsPoint{Zone: 50, Band: 'N', Col: 'N', Row: 'A', Easting: 123, Northing: 4567}
	got := formatMGRS(p)
	want := "50N NA 00123 04567"
	if got != want {
		t.Errorf("formatMGRS = %q, want %q", got, want)
	}
}
