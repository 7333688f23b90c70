package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodic2Deterministic(t *testing.T) {
	a := Periodic2(1.37, 4.21, 8, 8, 42)
	b := Periodic2(1.37, 4.21, 8, 8, 42)
	assert.Equal(t, a, b)
}

func TestPeriodic2Tiles(t *testing.T) {
	for _, p := range []struct{ x, y float64 }{{0.3, 0.7}, {2.5, 1.1}, {6.9, 3.3}} {
		v := Periodic2(p.x, p.y, 5, 7, 13)
		assert.InDelta(t, v, Periodic2(p.x+5, p.y, 5, 7, 13), 1e-12, "x period")
		assert.InDelta(t, v, Periodic2(p.x, p.y+7, 5, 7, 13), 1e-12, "y period")
	}
}

func TestPeriodic2BaseChangesField(t *testing.T) {
	diffs := 0
	for i := 0; i < 32; i++ {
		x := float64(i) * 0.37
		if Periodic2(x, x*1.3, 16, 16, 1) != Periodic2(x, x*1.3, 16, 16, 200) {
			diffs++
		}
	}
	assert.Greater(t, diffs, 0, "base offset must shift the lattice")
}

func TestPeriodic2NominalRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		v := Periodic2(float64(i)*0.173, float64(i)*0.291, 32, 32, 7)
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
}

func TestPeriodic2ZeroAtLatticePoints(t *testing.T) {
	assert.Equal(t, 0.0, Periodic2(3, 5, 8, 8, 99))
}

func TestFractal2Deterministic(t *testing.T) {
	a := Fractal2(0.42, 0.77, 4, 0.5, 2.0, 6, 6, 17)
	b := Fractal2(0.42, 0.77, 4, 0.5, 2.0, 6, 6, 17)
	assert.Equal(t, a, b)
}

func TestFractal2SingleOctaveMatchesPeriodic(t *testing.T) {
	assert.Equal(t, Periodic2(0.9, 1.8, 4, 4, 3), Fractal2(0.9, 1.8, 1, 0.5, 2.0, 4, 4, 3))
}
