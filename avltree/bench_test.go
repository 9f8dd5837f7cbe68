package avltree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hollowmaze/avltree"
)

// BenchmarkInsert measures sequential insertion of n random keys.
func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	keys := make([]int, 1<<14)
	for i := range keys {
		keys[i] = rng.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := avltree.New[int, struct{}]()
		for _, k := range keys {
			_ = tr.Insert(k, struct{}{})
		}
	}
}

// BenchmarkFind measures lookups in a 2^14-key tree.
func BenchmarkFind(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	tr := avltree.New[int, struct{}]()
	keys := make([]int, 1<<14)
	for i := range keys {
		keys[i] = rng.Int()
		_ = tr.Insert(keys[i], struct{}{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Find(keys[i%len(keys)])
	}
}
