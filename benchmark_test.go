package willowfx

import (
	"testing"
	"time"
)

// setupBenchScene creates a Scene with n entrance-wrapped sprites, cycling
// through every preset, staggered in rows of 100.
func setupBenchScene(n int) *Scene {
	s := NewScene()
	root := s.Root()
	build := []func(name string, child *Node) *Node{
		func(name string, c *Node) *Node { return NewFadeIn(name, DefaultFadeInConfig(), c) },
		func(name string, c *Node) *Node { return NewSlideIn(name, DefaultSlideInConfig(), c) },
		func(name string, c *Node) *Node { return NewScaleIn(name, DefaultScaleInConfig(), c) },
		func(name string, c *Node) *Node { return NewRotateIn(name, DefaultRotateInConfig(), c) },
		func(name string, c *Node) *Node { return NewBounceIn(name, DefaultBounceInConfig(), c) },
		func(name string, c *Node) *Node { return NewFlipIn(name, DefaultFlipInConfig(), c) },
		func(name string, c *Node) *Node { return NewZoomIn(name, DefaultZoomInConfig(), c) },
	}
	var row *Node
	for i := 0; i < n; i++ {
		if i%100 == 0 {
			row = NewSequence("row", SequenceConfig{Stagger: 5 * time.Millisecond})
			row.Y = float64(i/100) * 40
			root.AddChild(row)
		}
		sp := NewSprite("sp", nil)
		sp.ScaleX, sp.ScaleY = 32, 32
		e := build[i%len(build)]("e", sp)
		e.X = float64(i%100) * 40
		row.AddChild(e)
	}
	for _, r := range root.Children() {
		Stagger(r, SequenceConfig{Stagger: 5 * time.Millisecond})
	}
	return s
}

func BenchmarkAdvance_10000Entrances_Running(b *testing.B) {
	s := setupBenchScene(10000)
	s.Advance(frame) // mount

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%120 == 0 {
			ReplayAll(s.Root(), "")
		}
		s.Advance(frame)
	}
}

func BenchmarkAdvance_10000Entrances_Settled(b *testing.B) {
	s := setupBenchScene(10000)
	for i := 0; i < 1200; i++ {
		s.Advance(frame)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Advance(frame)
	}
}

func BenchmarkInterpolate_Bounce(b *testing.B) {
	out := DefaultBounceInConfig().bounceTable().output
	var sink float64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink += Interpolate(float64(i%100)/100, bounceInput, out, ExtrapolateExtend)
	}
	_ = sink
}

func BenchmarkSpringDriver_Step(b *testing.B) {
	d := NewSpringDriver(SpringBouncy)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, rest := d.Step(frame); rest {
			d.Reset(0)
		}
	}
}
