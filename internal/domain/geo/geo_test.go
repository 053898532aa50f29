package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		a, b        orb.Point
		expectedKm  float64
		toleranceKm float64
	}{
		{
			name:        "identical points",
			a:           orb.Point{120.0261, 30.2741},
			b:           orb.Point{120.0261, 30.2741},
			expectedKm:  0,
			toleranceKm: 0,
		},
		{
			name:        "hangzhou to shenzhen",
			a:           orb.Point{120.0261, 30.2741},
			b:           orb.Point{114.0579, 22.5431},
			expectedKm:  1033,
			toleranceKm: 10,
		},
		{
			name:        "one degree of latitude",
			a:           orb.Point{0, 0},
			b:           orb.Point{0, 1},
			expectedKm:  111.19,
			toleranceKm: 0.1,
		},
		{
			name:        "antipodal points",
			a:           orb.Point{0, 0},
			b:           orb.Point{180, 0},
			expectedKm:  math.Pi * EarthRadiusKm,
			toleranceKm: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.expectedKm) > tt.toleranceKm {
				t.Fatalf("DistanceKm(%v, %v) = %f, want %f ± %f", tt.a, tt.b, got, tt.expectedKm, tt.toleranceKm)
			}
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]orb.Point{
		{{120.0261, 30.2741}, {114.0579, 22.5431}},
		{{116.4877, 40.0020}, {116.3072, 40.0566}},
		{{-73.9857, 40.7484}, {2.2945, 48.8584}},
		{{0, -89.9}, {0, 89.9}},
	}

	for _, pair := range pairs {
		ab := DistanceKm(pair[0], pair[1])
		ba := DistanceKm(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("distance not symmetric: d(a,b)=%v d(b,a)=%v for %v", ab, ba, pair)
		}
	}
}

func TestColocated(t *testing.T) {
	t.Parallel()

	origin := orb.Point{120.0261, 30.2741}

	tests := []struct {
		name     string
		other    orb.Point
		expected bool
	}{
		{name: "same point", other: orb.Point{120.0261, 30.2741}, expected: true},
		{name: "just inside both axes", other: orb.Point{120.0261 + 0.0009, 30.2741 - 0.0009}, expected: true},
		{name: "exactly on latitude boundary", other: orb.Point{120.0261, 30.2741 + 0.001}, expected: false},
		{name: "longitude out of box", other: orb.Point{120.0261 + 0.0015, 30.2741}, expected: false},
		{name: "both axes out", other: orb.Point{120.1, 30.4}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Colocated(origin, tt.other); got != tt.expected {
				t.Fatalf("Colocated(%v, %v) = %v, want %v", origin, tt.other, got, tt.expected)
			}
		})
	}
}

// The clustering test is a degree-space bounding box, not a haversine radius:
// at high latitude, longitude degrees shrink in kilometers, so a point outside
// the longitude box can be nearer in kilometers than an in-box point displaced
// in latitude.
func TestColocatedIsNotHaversine(t *testing.T) {
	t.Parallel()

	origin := orb.Point{30.0, 80.0}
	inBox := orb.Point{30.0, 80.0009}
	outBox := orb.Point{30.0011, 80.0}

	if !Colocated(origin, inBox) {
		t.Fatal("expected bounding-box co-location for in-box point")
	}
	if Colocated(origin, outBox) {
		t.Fatal("expected point outside the longitude bounding box")
	}
	if DistanceKm(origin, outBox) > DistanceKm(origin, inBox) {
		t.Fatal("expected the out-of-box point to be nearer in kilometers")
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	if !ValidCoordinate(30.2741, 120.0261) {
		t.Fatal("expected valid coordinate")
	}
	if ValidCoordinate(91, 0) || ValidCoordinate(-91, 0) {
		t.Fatal("expected latitude out of range")
	}
	if ValidCoordinate(0, 181) || ValidCoordinate(0, -181) {
		t.Fatal("expected longitude out of range")
	}
}
