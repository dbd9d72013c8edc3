package pathfinding

import (
	crand "crypto/rand"
	"encoding/binary"
)

// xoshiro256 is the xoshiro256++ generator. The routing engine depends
// on this exact algorithm so that a given seed produces the same tweak
// sequence, and therefore the same bytes, everywhere.
type xoshiro256 struct {
	s [4]uint64
}

// newXoshiro256 expands a 64-bit seed into the generator state with
// splitmix64, the seeding recommended by the generator's authors.
func newXoshiro256(seed uint64) *xoshiro256 {
	var x xoshiro256
	for i := range x.s {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		x.s[i] = z ^ (z >> 31)
	}
	return &x
}

// entropySeed draws a seed from the operating system.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("pathfinding: cannot seed PRNG: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func rotl64(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// next advances the generator and returns the next 64-bit value.
func (x *xoshiro256) next() uint64 {
	result := rotl64(x.s[0]+x.s[3], 23) + x.s[0]

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t
	x.s[3] = rotl64(x.s[3], 45)

	return result
}

// shuffle runs a Fisher-Yates pass over n elements.
func (x *xoshiro256) shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(x.next() % uint64(i+1))
		swap(i, j)
	}
}
