package synthetic

import (
	"math"
	"math/rand"

	"dl100-bridge/pkg/frame"
	"dl100-bridge/pkg/telemetry"
)

// Generation parameters, matching the bench setup the bridge is validated
// against: the target sits around 2.5 m with up to 0.5 m of wobble.
const (
	BaseDistance int32 = 2500
	JitterRange  int32 = 500
)

// Source generates plausible distance/velocity records without a physical
// device. Velocity is a first-difference rate estimate over the cycle, not a
// true derivative; good enough for validating the publish path.
type Source struct {
	clock telemetry.Clock
	rng   *rand.Rand
}

// New creates a Source. A nil clock falls back to the wall clock; a nil rng
// falls back to a time-seeded generator.
func New(clock telemetry.Clock, rng *rand.Rand) *Source {
	if clock == nil {
		clock = telemetry.RealClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(telemetry.RealClock{}.Now().UnixNano()))
	}
	return &Source{clock: clock, rng: rng}
}

// Tick produces one record and returns the distance to thread into the next
// call. With injectZero the distance is forced to zero, exercising the
// subscriber's dropout handling. cycleSeconds must be positive.
func (s *Source) Tick(prevDistance int32, cycleSeconds float64, injectZero bool) (frame.Record, int32) {
	var dist int32
	if !injectZero {
		dist = BaseDistance + s.rng.Int31n(2*JitterRange+1) - JitterRange
	}

	var vel int32
	if cycleSeconds > 0 {
		// Round before converting: 1/30 is not exact in a float64 and
		// plain truncation would be off by one unit. Conversion through
		// int64 wraps deterministically if the rate ever overflows int32.
		vel = int32(int64(math.Round(float64(dist-prevDistance) / cycleSeconds)))
	}

	rec := frame.Record{
		TS:       uint64(s.clock.Now().UnixMilli()),
		Distance: dist,
		Velocity: vel,
	}
	return rec, dist
}
