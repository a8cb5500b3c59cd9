package geo

import (
	"math"
	"testing"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Coordinate{Latitude: 13.7563, Longitude: 100.5018}
	if d := Distance(p, p); d != 0 {
		t.Errorf("Distance(p, p) = %f, want 0", d)
	}
}

func TestDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		name      string
		a, b      Coordinate
		want      float64 // meters
		tolerance float64
	}{
		{
			// Bangkok city pillar to Wat Arun, roughly 1.1 km.
			name:      "short hop",
			a:         Coordinate{13.7525, 100.4935},
			b:         Coordinate{13.7437, 100.4889},
			want:      1100,
			tolerance: 150,
		},
		{
			// One degree of latitude is about 111.2 km everywhere.
			name:      "one degree latitude",
			a:         Coordinate{0, 0},
			b:         Coordinate{1, 0},
			want:      111195,
			tolerance: 100,
		},
		{
			name:      "antipodal-ish",
			a:         Coordinate{0, 0},
			b:         Coordinate{0, 180},
			want:      math.Pi * earthRadiusMeters,
			tolerance: 1,
		},
	}
	for _, c := range cases {
		got := Distance(c.a, c.b)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: Distance = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinate{13.7563, 100.5018}
	b := Coordinate{13.7463, 100.5350}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance is not symmetric")
	}
}

func TestClassify_AtOffice(t *testing.T) {
	office := Office{Coordinate: Coordinate{13.7563, 100.5018}, RadiusMeters: 500}
	got := Classify(office.Coordinate, office)
	if got.DistanceMeters != 0 {
		t.Errorf("DistanceMeters = %f, want 0", got.DistanceMeters)
	}
	if !got.Inside {
		t.Error("Inside = false, want true at the office coordinate")
	}

	// Inside holds even with a zero radius.
	office.RadiusMeters = 0
	if got := Classify(office.Coordinate, office); !got.Inside {
		t.Error("Inside = false with zero radius at the office coordinate")
	}
}

func TestClassify_OutsideRadius(t *testing.T) {
	office := Office{Coordinate: Coordinate{13.7563, 100.5018}, RadiusMeters: 500}

	// About 1 km north of the office.
	pos := Coordinate{Latitude: office.Latitude + 0.009, Longitude: office.Longitude}
	got := Classify(pos, office)
	if got.Inside {
		t.Errorf("Inside = true at %.0f m with radius 500 m", got.DistanceMeters)
	}
	if got.DistanceMeters < 900 || got.DistanceMeters > 1100 {
		t.Errorf("DistanceMeters = %f, want ~1000", got.DistanceMeters)
	}
}

func TestClassify_Boundary(t *testing.T) {
	office := Office{Coordinate: Coordinate{0, 0}, RadiusMeters: 200}

	near := Classify(Coordinate{0.001, 0}, office) // ~111 m
	if !near.Inside {
		t.Errorf("Inside = false at %.0f m with radius 200 m", near.DistanceMeters)
	}

	far := Classify(Coordinate{0.003, 0}, office) // ~334 m
	if far.Inside {
		t.Errorf("Inside = true at %.0f m with radius 200 m", far.DistanceMeters)
	}
}
