package chaser

import (
	"testing"

	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/config"
)

func BenchmarkTick(b *testing.B) {
	m, err := New(config.Reference())
	if err != nil {
		b.Fatalf("Failed to create machine: %v", err)
	}
	in := Inputs{}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		m.Tick(in)
	}
}

func BenchmarkRunUntilFrame(b *testing.B) {
	presets := []struct {
		name string
		cfg  config.Config
	}{
		{"sim", config.Sim()},
		{"reference", config.Reference()},
	}

	for _, tc := range presets {
		b.Run(tc.name, func(b *testing.B) {
			m, err := New(tc.cfg)
			if err != nil {
				b.Fatalf("Failed to create machine: %v", err)
			}
			m.Panel().Press(button.Right)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if err := m.RunUntilFrame(); err != nil {
					b.Fatalf("RunUntilFrame failed: %v", err)
				}
			}
		})
	}
}
