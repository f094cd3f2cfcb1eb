// Package prng provides the seeded pseudo-random primitive behind slot
// ranking copy and feedback throttles.
//
// Output must stay bit-identical to the mobile client, so the string hash is
// FNV-1a over UTF-16 code units and the generator is Mulberry32, both with
// 32-bit wraparound arithmetic. Do not replace either with math/rand.
//
// A *Rand is never shared. Every decision point builds its own generator from
// a (seed, salt) pair so unrelated picks stay independent of call order.
package prng

import "unicode/utf16"

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619

	mulberryIncrement uint32 = 0x6D2B79F5
)

// HashString derives a seed from s. ASCII input hashes the same as
// hash/fnv's New32a; other text is hashed per UTF-16 code unit.
func HashString(s string) uint32 {
	h := fnvOffset32
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}

// Rand is a Mulberry32 generator. The zero value is a valid generator seeded with 0.
type Rand struct {
	state uint32
}

func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 advances the state and returns the tempered 32-bit output.
func (r *Rand) Uint32() uint32 {
	r.state += mulberryIncrement
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// Intn returns an index in [0, n) as floor(Float64()*n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("prng: invalid argument to Intn")
	}
	return int(r.Float64() * float64(n))
}
