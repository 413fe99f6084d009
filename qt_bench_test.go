package quadtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, rects int) *Quadtree {
	b.Helper()
	rnd := rand.New(rand.NewSource(1))
	qt := New(BoundingBox{X: 50.0, Y: 50.0, Width: 100.0, Height: 100.0})
	for i := 0; i != rects; i++ {
		r := Rectangle{rnd.Float64()*100.0 + 50.0, rnd.Float64()*100.0 + 50.0, 0.01, 0.01}
		if err := qt.Insert(r); err != nil {
			b.Fatal(err)
		}
	}
	return qt
}

func BenchmarkInsert(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	qt := New(BoundingBox{X: 50.0, Y: 50.0, Width: 100.0, Height: 100.0})
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		_ = qt.Insert(Rectangle{rnd.Float64()*100.0 + 50.0, rnd.Float64()*100.0 + 50.0, 0.01, 0.01})
	}
}

func BenchmarkFind(b *testing.B) {
	qt := benchTree(b, 100000)
	rnd := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		qt.Find(rnd.Float64()*100.0+50.0, rnd.Float64()*100.0+50.0)
	}
}

func BenchmarkDelete(b *testing.B) {
	qt := benchTree(b, 10000)
	rnd := rand.New(rand.NewSource(3))
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		qt.Delete(rnd.Float64()*100.0+50.0, rnd.Float64()*100.0+50.0)
	}
}
