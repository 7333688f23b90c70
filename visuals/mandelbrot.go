package visuals

import (
	"image"
	"image/color"

	"github.com/randomfusion/sdk/seed"
)

const paletteSize = 5

type mandelbrotParams struct {
	centerX       float64
	centerY       float64
	halfWidth     float64
	maxIterations int
	palette       []color.RGBA
}

// deriveMandelbrotParams consumes, in order: 4 characters each for the view
// center X, center Y and horizontal half extent, 2 characters for the
// iteration cap and five 6 character palette colors. Points that never
// escape are painted black regardless of palette.
func deriveMandelbrotParams(stream *seed.Stream) mandelbrotParams {
	p := mandelbrotParams{
		centerX:       seed.MapToRange(stream.NextChunk(4), -2.0, 1.0, false),
		centerY:       seed.MapToRange(stream.NextChunk(4), -1.2, 1.2, false),
		halfWidth:     seed.MapToRange(stream.NextChunk(4), 0.3, 1.5, false),
		maxIterations: int(seed.MapToRange(stream.NextChunk(2), 80, 255, true)),
	}
	for i := 0; i < paletteSize; i++ {
		p.palette = append(p.palette, HexToRGB(stream.NextChunk(6)))
	}
	return p
}

// Mandelbrot renders the escape time fractal over a seed derived view
// window. The per pixel step is fixed by the horizontal extent and reused
// vertically, so the set is never stretched. All seed consumption happens
// before the pixel loop.
func Mandelbrot(seedHex string, width, height int) (*image.RGBA, error) {
	stream, err := seed.NewStream(seedHex)
	if err != nil {
		return nil, err
	}
	params := deriveMandelbrotParams(stream)
	inside := color.RGBA{A: 0xff}

	step := 2 * params.halfWidth / float64(width)
	halfHeight := step * float64(height) / 2

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		ci := params.centerY - halfHeight + (float64(y)+0.5)*step
		for x := 0; x < width; x++ {
			cr := params.centerX - params.halfWidth + (float64(x)+0.5)*step
			n := escapeIterations(cr, ci, params.maxIterations)
			if n == params.maxIterations {
				img.SetRGBA(x, y, inside)
			} else {
				img.SetRGBA(x, y, params.palette[n%paletteSize])
			}
		}
	}
	return img, nil
}

// escapeIterations runs z <- z^2 + c from z = 0 and reports how many
// iterations it takes |z| to pass 2, or maxIterations if it never does.
func escapeIterations(cr, ci float64, maxIterations int) int {
	var zr, zi float64
	for n := 0; n < maxIterations; n++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 > 4 {
			return n
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return maxIterations
}
