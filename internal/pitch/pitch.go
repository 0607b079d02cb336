// Package pitch classifies 0–100 pitch coordinates into thirds and flanks.
// All orientation handling lives here: callers decide once per trigger type
// whether a coordinate needs reflection and pass that in, instead of
// reflecting inline at each call site.
package pitch

import "github.com/franp/go-pitch-metrics/internal/model"

// Config holds the pitch geometry breakpoints. Zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Pitch-length breakpoints separating the thirds.
	ThirdLower float64
	ThirdUpper float64

	// Pitch-width breakpoints separating the flanks.
	FlankLower float64
	FlankUpper float64

	// Attacking penalty-box bounds used for big-chance classification.
	BoxMinX float64
	BoxMinY float64
	BoxMaxY float64
}

// DefaultConfig returns the standard breakpoints.
func DefaultConfig() Config {
	return Config{
		ThirdLower: 33.33,
		ThirdUpper: 66.67,
		FlankLower: 33.0,
		FlankUpper: 66.0,
		BoxMinX:    83.0,
		BoxMinY:    21.1,
		BoxMaxY:    78.9,
	}
}

// Reflect mirrors a coordinate across the halfway line. Applying it twice
// returns the original value.
func Reflect(x float64) float64 { return 100 - x }

// Third maps a pitch-length coordinate to a third relative to the attacking
// direction implied by the coordinate frame.
func (c Config) Third(x float64) model.Zone {
	switch {
	case x < c.ThirdLower:
		return model.ZoneDefensive
	case x > c.ThirdUpper:
		return model.ZoneAttacking
	default:
		return model.ZoneMiddle
	}
}

// ThirdOriented maps x to a third, reflecting first when the event's recorded
// frame of reference is opposite to the observing team's attacking direction.
func (c Config) ThirdOriented(x float64, reflected bool) model.Zone {
	if reflected {
		x = Reflect(x)
	}
	return c.Third(x)
}

// InAttackingBox reports whether (x, y) lies inside the attacking penalty-box
// region used to upgrade a failed pass to a big chance.
func (c Config) InAttackingBox(x, y float64) bool {
	return x >= c.BoxMinX && y >= c.BoxMinY && y <= c.BoxMaxY
}

// Flank returns the dominant lateral channel of the given pitch-width
// coordinates by majority vote. When swapped is true the observing team
// defends the opposite end and left/right are exchanged. Ties resolve
// center first, then left.
func (c Config) Flank(ys []float64, swapped bool) model.Flank {
	var left, center, right int
	for _, y := range ys {
		switch {
		case y > c.FlankUpper:
			left++
		case y < c.FlankLower:
			right++
		default:
			center++
		}
	}
	if swapped {
		left, right = right, left
	}
	best := model.FlankCenter
	bestCount := center
	if left > bestCount {
		best, bestCount = model.FlankLeft, left
	}
	if right > bestCount {
		best = model.FlankRight
	}
	return best
}
