// Package noise implements the coherent gradient noise behind the
// noisescape style. The lattice is periodic so a viewport can be rendered
// without visible seams, and a base offset shifts the permutation so two
// seeds with the same derived parameters still produce different fields.
package noise

import "math"

// Ken Perlin's reference permutation.
var perm = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return x - y
	case 2:
		return -x + y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

func latticeHash(xi, yi, base int) int {
	return perm[(perm[(xi+base)&255]+yi+base)&255]
}

// Periodic2 samples classic 2D Perlin noise that tiles exactly with the
// given integer periods in lattice units. Output is roughly in [-0.7, 0.7].
func Periodic2(x, y float64, periodX, periodY, base int) float64 {
	if periodX < 1 {
		periodX = 1
	}
	if periodY < 1 {
		periodY = 1
	}
	xf := math.Floor(x)
	yf := math.Floor(y)
	dx := x - xf
	dy := y - yf
	x0 := ((int(xf) % periodX) + periodX) % periodX
	y0 := ((int(yf) % periodY) + periodY) % periodY
	x1 := (x0 + 1) % periodX
	y1 := (y0 + 1) % periodY

	u := fade(dx)
	v := fade(dy)
	n00 := grad(latticeHash(x0, y0, base), dx, dy)
	n10 := grad(latticeHash(x1, y0, base), dx-1, dy)
	n01 := grad(latticeHash(x0, y1, base), dx, dy-1)
	n11 := grad(latticeHash(x1, y1, base), dx-1, dy-1)

	return lerp(lerp(n00, n10, u), lerp(n01, n11, u), v) * math.Sqrt2 / 2
}

// Fractal2 sums successive octaves of Periodic2, scaling frequency by
// lacunarity and amplitude by persistence. The octave sum is not
// renormalised; callers clamp after mapping into their own range.
func Fractal2(x, y float64, octaves int, persistence, lacunarity float64, periodX, periodY, base int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	frequency := 1.0
	amplitude := 1.0
	total := 0.0
	for o := 0; o < octaves; o++ {
		px := int(float64(periodX) * frequency)
		py := int(float64(periodY) * frequency)
		total += amplitude * Periodic2(x*frequency, y*frequency, px, py, base)
		frequency *= lacunarity
		amplitude *= persistence
	}
	return total
}
