package visuals

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/randomfusion/sdk/noise"
	"github.com/randomfusion/sdk/seed"
)

type noiseParams struct {
	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
	colorA      color.RGBA
	colorB      color.RGBA
	base        int
}

// deriveNoiseParams consumes, in order: 2 characters of scale, 1 of octave
// count, 2 of persistence, 2 of lacunarity and two 6 character gradient
// colors. The lattice base offset comes from the digest of the whole seed,
// so two seeds that happen to derive identical parameters still produce
// different fields.
func deriveNoiseParams(stream *seed.Stream, seedHex string) noiseParams {
	p := noiseParams{
		scale:       seed.MapToRange(stream.NextChunk(2), 30, 120, false),
		octaves:     int(seed.MapToRange(stream.NextChunk(1), 2, 6, true)),
		persistence: seed.MapToRange(stream.NextChunk(2), 0.3, 0.7, false),
		lacunarity:  seed.MapToRange(stream.NextChunk(2), 1.8, 3.5, false),
		colorA:      HexToRGB(stream.NextChunk(6)),
		colorB:      HexToRGB(stream.NextChunk(6)),
	}
	raw, _ := strconv.ParseUint(seed.Digest(seedHex)[:4], 16, 32)
	p.base = int(raw % 256)
	return p
}

// NoiseScape fills the raster by sampling a periodic fractal noise field
// and blending between two seed derived colors. The tiling period is
// chosen to exceed the sampled extent so no seam is visible inside the
// viewport.
func NoiseScape(seedHex string, width, height int) (*image.RGBA, error) {
	stream, err := seed.NewStream(seedHex)
	if err != nil {
		return nil, err
	}
	params := deriveNoiseParams(stream, seedHex)

	periodX := int(math.Ceil(float64(width)/params.scale*1.2)) + 2
	periodY := int(math.Ceil(float64(height)/params.scale*1.2)) + 2

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Fractal2(
				float64(x)/params.scale, float64(y)/params.scale,
				params.octaves, params.persistence, params.lacunarity,
				periodX, periodY, params.base,
			)
			t := (v + 0.7) / 1.4
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.SetRGBA(x, y, lerpColor(params.colorA, params.colorB, t))
		}
	}
	return img, nil
}
