package gallery

import (
	"math/rand"
	"sort"
	"time"
)

// RandomSource picks uniform numbers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource creates time-seeded source for production builds. Not safe for concurrent use.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource creates reproducible source
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Positions chooses min(count, max+1) distinct insertion indices in [0, max], sorted ascending
func Positions(rnd RandomSource, count, max int) []int {
	if max < 0 {
		return []int{}
	}
	slots := max + 1
	if count > slots {
		count = slots
	}
	if count <= 0 {
		return []int{}
	}

	// partial Fisher-Yates: the first count cells become a uniform sample without replacement
	pool := make([]int, slots)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(slots-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	result := pool[:count:count]
	sort.Ints(result)
	return result
}
