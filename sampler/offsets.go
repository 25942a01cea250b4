package sampler

import (
	"math/rand"
	"sync"
	"time"
)

// RandomOffsets draws distinct offsets uniformly from [0, total) with a
// partial Fisher-Yates shuffle. Only displaced positions are stored, so the
// cost is proportional to n rather than total.
type RandomOffsets struct {
	mu   sync.Mutex
	Rand *rand.Rand
}

func NewRandomOffsets() *RandomOffsets {
	return &RandomOffsets{
		Rand: rand.New(rand.NewSource(time.Now().UTC().UnixNano())),
	}
}

func (r *RandomOffsets) Pick(total, n int) []int {
	if n > total {
		n = total
	}
	if n <= 0 {
		return []int{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	displaced := make(map[int]int, n)
	at := func(i int) int {
		if v, ok := displaced[i]; ok {
			return v
		}
		return i
	}

	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		j := i + int(r.Rand.Int63n(int64(total-i)))
		offsets[i] = at(j)
		displaced[j] = at(i)
	}
	return offsets
}
