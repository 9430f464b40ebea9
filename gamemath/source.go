package gamemath

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source yields uniform draws in [0,1). Each session or actor owns its own Source.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type cryptoSource struct{}

// NewCryptoSource returns a source backed by crypto/rand (CSPRNG), used when no seed is configured.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Float64 uses the top 53 bits of a random uint64, same construction as math/rand.
func (cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
}

// Uniform draws from [lo, hi) using one draw of src.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// SequenceSource replays fixed draws in order and wraps around when exhausted.
type SequenceSource struct {
	draws []float64
	n     int
}

func NewSequenceSource(draws ...float64) *SequenceSource {
	return &SequenceSource{draws: draws}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.n%len(s.draws)]
	s.n++
	return v
}

// Consumed is the number of draws taken so far.
func (s *SequenceSource) Consumed() int { return s.n }
