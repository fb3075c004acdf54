package core

import "math/bits"

// maxExponent bounds the power step; any base above one overflows 32 bits
// well before it.
const maxExponent = 32

// RNG is the small deterministic generator behind apple placement. Every
// frame, key press and draw advances it, so a run is reproducible from its
// seed and the ordered input history. It is a value type so a game state
// holding one can be copied and compared.
type RNG struct {
	seed uint32
}

// NewRNG creates a generator starting at seed.
func NewRNG(seed uint32) RNG {
	return RNG{seed: seed}
}

// Seed returns the current seed.
func (r RNG) Seed() uint32 { return r.seed }

// Tick advances the seed by one simulated frame.
func (r *RNG) Tick() { r.seed++ }

// Stir folds an input event into the seed.
func (r *RNG) Stir(v uint32) { r.seed += v + 1 }

// Next draws a value. The seed is churned twice and the result is raised to
// length+1; on overflow it falls back to a wrapping multiply.
func (r *RNG) Next(length int) uint32 {
	s := churn(churn(r.seed))
	r.seed = s
	if length < 0 {
		length = 0
	}
	exp := uint32(length) + 1
	if v, ok := checkedPow(s, exp); ok {
		return v
	}
	return s * exp
}

func churn(s uint32) uint32 {
	return s + s*(s%256)
}

func checkedPow(base, exp uint32) (uint32, bool) {
	if exp > maxExponent && base > 1 {
		return 0, false
	}
	if base <= 1 {
		return base, true
	}
	result := uint32(1)
	for i := uint32(0); i < exp; i++ {
		hi, lo := bits.Mul32(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}
