package scenario

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"greenmind/internal/model"
	"math"
	"math/rand"
	"sync"
)

// Sampler picks a uniformly random subset of eligible users
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler drawing from src
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler creates a reproducible sampler
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(rand.NewSource(seed))
}

// NewEntropySampler creates a sampler seeded from the system entropy source
func NewEntropySampler() *Sampler {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("scenario: reading entropy: %v", err))
	}
	return NewSeededSampler(int64(binary.LittleEndian.Uint64(b[:])))
}

// ValidatePercentage rejects shares outside (0, 1]
func ValidatePercentage(p float64) error {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return fmt.Errorf("%w: percentage %v must be in (0, 1]", ErrInvalidArgument, p)
	}
	return nil
}

// TargetSize is ceil(n * p) clamped to [0, n]. A tiny tolerance absorbs
// float error so that 10 * 0.3 yields 3, not 4.
func TargetSize(n int, p float64) int {
	k := int(math.Ceil(float64(n)*p - 1e-9))
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}

// Sample shuffles a copy of eligible with Fisher-Yates and returns the first
// TargetSize elements. The input slice is not modified.
func (s *Sampler) Sample(eligible []*model.User, percentage float64) ([]*model.User, error) {
	if err := ValidatePercentage(percentage); err != nil {
		return nil, err
	}
	k := TargetSize(len(eligible), percentage)
	if k == 0 {
		return []*model.User{}, nil
	}

	pool := append([]*model.User(nil), eligible...)

	s.mu.Lock()
	for i := len(pool) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	s.mu.Unlock()

	return pool[:k], nil
}
