package dqa

import (
	"math/rand"
	"sync"
)

// randSource 可注入种子的随机源。rand.Rand 本身非并发安全，
// HTTP 层与定时器可能同时触发生成，这里统一加锁
type randSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSource) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
