package pitch

import (
	"testing"

	"github.com/franp/go-pitch-metrics/internal/model"
)

func TestThird_Breakpoints(t *testing.T) {
	c := DefaultConfig()
	cases := []struct {
		x    float64
		want model.Zone
	}{
		{0, model.ZoneDefensive},
		{20, model.ZoneDefensive},
		{33.32, model.ZoneDefensive},
		{33.33, model.ZoneMiddle},
		{50, model.ZoneMiddle},
		{66.67, model.ZoneMiddle},
		{66.68, model.ZoneAttacking},
		{95, model.ZoneAttacking},
		{100, model.ZoneAttacking},
	}
	for _, tc := range cases {
		if got := c.Third(tc.x); got != tc.want {
			t.Errorf("Third(%.2f): want %s, got %s", tc.x, tc.want, got)
		}
	}
}

// TestReflect_Idempotent: reflecting twice returns the original value.
func TestReflect_Idempotent(t *testing.T) {
	for _, x := range []float64{0, 5, 20, 33.33, 50, 66.67, 95, 100} {
		if got := Reflect(Reflect(x)); got != x {
			t.Errorf("Reflect(Reflect(%.2f)) = %.2f, want %.2f", x, got, x)
		}
	}
}

// TestThird_SymmetricMidpoint: x=50 classifies identically reflected or not.
func TestThird_SymmetricMidpoint(t *testing.T) {
	c := DefaultConfig()
	if c.ThirdOriented(50, false) != c.ThirdOriented(50, true) {
		t.Error("x=50 should classify identically reflected and unreflected")
	}
}

func TestThirdOriented_Reflects(t *testing.T) {
	c := DefaultConfig()
	// An event recorded at x=95 in the opposite frame sits at x=5 for the
	// observing team: deep in its defensive third.
	if got := c.ThirdOriented(95, true); got != model.ZoneDefensive {
		t.Errorf("ThirdOriented(95, reflected): want Defensive third, got %s", got)
	}
	if got := c.ThirdOriented(95, false); got != model.ZoneAttacking {
		t.Errorf("ThirdOriented(95, raw): want Attacking third, got %s", got)
	}
}

func TestInAttackingBox(t *testing.T) {
	c := DefaultConfig()
	cases := []struct {
		x, y float64
		want bool
	}{
		{90, 50, true},
		{83, 21.1, true},  // inclusive lower bounds
		{83, 78.9, true},  // inclusive upper y
		{82.99, 50, false},
		{90, 21.0, false},
		{90, 79.0, false},
		{50, 50, false},
	}
	for _, tc := range cases {
		if got := c.InAttackingBox(tc.x, tc.y); got != tc.want {
			t.Errorf("InAttackingBox(%.2f, %.2f): want %v, got %v", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestFlank_MajorityVote(t *testing.T) {
	c := DefaultConfig()
	cases := []struct {
		name    string
		ys      []float64
		swapped bool
		want    model.Flank
	}{
		{"all high y", []float64{80, 90, 75}, false, model.FlankLeft},
		{"all low y", []float64{10, 20, 5}, false, model.FlankRight},
		{"central", []float64{40, 50, 60}, false, model.FlankCenter},
		{"majority wins", []float64{80, 85, 40}, false, model.FlankLeft},
		{"swapped flips sides", []float64{80, 90, 75}, true, model.FlankRight},
		{"tie resolves center", []float64{80, 40}, false, model.FlankCenter},
		{"empty defaults center", nil, false, model.FlankCenter},
	}
	for _, tc := range cases {
		if got := c.Flank(tc.ys, tc.swapped); got != tc.want {
			t.Errorf("%s: want %s, got %s", tc.name, tc.want, got)
		}
	}
}
