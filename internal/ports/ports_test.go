package ports

import (
	"math"
	"testing"
)

func TestLookup_KnownPorts(t *testing.T) {
	atlanta, ok := Lookup("Atlanta, US")
	if !ok {
		t.Fatal("expected Atlanta, US in the port table")
	}
	if math.Abs(atlanta.Lat-33.749) > 1e-9 || math.Abs(atlanta.Lng-(-84.388)) > 1e-9 {
		t.Errorf("Atlanta coordinates wrong: got (%v, %v)", atlanta.Lat, atlanta.Lng)
	}

	rotterdam, ok := Lookup("Rotterdam, NL")
	if !ok {
		t.Fatal("expected Rotterdam, NL in the port table")
	}
	if math.Abs(rotterdam.Lat-51.9225) > 1e-9 || math.Abs(rotterdam.Lng-4.47917) > 1e-9 {
		t.Errorf("Rotterdam coordinates wrong: got (%v, %v)", rotterdam.Lat, rotterdam.Lng)
	}
}

func TestLookup_UnknownPort(t *testing.T) {
	if _, ok := Lookup("Narnia, XX"); ok {
		t.Error("unknown port must not resolve")
	}
	// Lookups are exact: case and spacing matter.
	if _, ok := Lookup("atlanta, us"); ok {
		t.Error("lookup must be case-sensitive")
	}
}

func TestKnown(t *testing.T) {
	if Known() == 0 {
		t.Fatal("port table must not be empty")
	}
}
