package engine

import "math/rand"

// RandomSource is the single, explicit source of randomness threaded
// through the engine (dice rolls, shuffles, random card selection). No
// engine operation consults a package-level/global RNG; every call that
// needs entropy takes a RandomSource by value and returns the advanced
// source alongside its result. It is a plain value (seed + draw counter),
// never a live *rand.Rand held by reference, so that copying a GameState
// never causes two copies to silently share (and race) the same draw
// stream (spec.md §5, §9 "Random source").
type RandomSource struct {
	seed    int64
	counter uint64
}

// NewRandomSource builds a deterministic source from a seed.
func NewRandomSource(seed int64) RandomSource {
	return RandomSource{seed: seed, counter: 0}
}

// Split derives a new, independent-looking source from this one, mixing
// the parent's seed with a caller-supplied tag (e.g. a character id or
// effect ordinal) so that sibling draws in the same state don't correlate.
func (r RandomSource) Split(tag int64) RandomSource {
	mixed := mix(r.seed, uint64(tag))
	return RandomSource{seed: int64(mixed), counter: 0}
}

func mix(seed int64, x uint64) uint64 {
	h := uint64(seed)*6364136223846793005 + x*1442695040888963407 + 1
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

// rand builds a fresh *rand.Rand seeded from (seed, counter) and returns
// the source with counter advanced, so the same logical source never
// produces the same stream twice even though it carries no live pointer.
func (r RandomSource) rand() (RandomSource, *rand.Rand) {
	s := mix(r.seed, r.counter)
	r.counter++
	return r, rand.New(rand.NewSource(int64(s)))
}

// Intn returns the next source and a value in [0, n).
func (r RandomSource) Intn(n int) (RandomSource, int) {
	if n <= 0 {
		return r, 0
	}
	next, rr := r.rand()
	return next, rr.Intn(n)
}

// ShuffleCopy returns the next source and a freshly shuffled copy of xs,
// leaving xs untouched.
func ShuffleCopy[T any](r RandomSource, xs []T) (RandomSource, []T) {
	out := make([]T, len(xs))
	copy(out, xs)
	next, rr := r.rand()
	rr.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return next, out
}
