package visuals

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/randomfusion/sdk/seed"
)

type circleParams struct {
	background color.RGBA
	numCircles int
	baseStroke int
}

// deriveCircleParams consumes, in order: 6 characters of background color,
// 2 characters of circle count and 2 characters of base stroke width. Count
// and stroke use direct modulo on the parsed byte rather than linear range
// mapping; a chunk that fails to parse keeps the caller supplied default.
func deriveCircleParams(stream *seed.Stream, defaultCircles, defaultStroke int) circleParams {
	p := circleParams{
		background: HexToRGB(stream.NextChunk(6)),
		numCircles: defaultCircles,
		baseStroke: defaultStroke,
	}
	if raw, err := strconv.ParseUint(stream.NextChunk(2), 16, 16); err == nil {
		p.numCircles = 5 + int(raw)%26
	}
	if raw, err := strconv.ParseUint(stream.NextChunk(2), 16, 16); err == nil {
		p.baseStroke = 1 + int(raw)%8
	}
	return p
}

// ConcentricCircles draws seed colored rings from the outside in. Each ring
// consumes a 6 character outline color and a 1 character stroke jitter;
// inner rings get progressively thinner strokes, floored at one pixel.
// Rings too small to hold their own stroke are skipped.
func ConcentricCircles(seedHex string, width, height, defaultCircles, defaultStroke int) (*image.RGBA, error) {
	stream, err := seed.NewStream(seedHex)
	if err != nil {
		return nil, err
	}
	params := deriveCircleParams(stream, defaultCircles, defaultStroke)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), params.background)

	cx := float64(width) / 2
	cy := float64(height) / 2
	maxRadius := 0.95 * math.Min(float64(width), float64(height)) / 2

	for i := params.numCircles; i >= 1; i-- {
		outline := HexToRGB(stream.NextChunk(6))
		jitter := 0
		if raw, err := strconv.ParseUint(stream.NextChunk(1), 16, 8); err == nil {
			jitter = int(raw) % 4
		}
		stroke := params.baseStroke + jitter - (params.numCircles-i)/3
		if stroke < 1 {
			stroke = 1
		}
		radius := maxRadius * float64(i) / float64(params.numCircles)
		if radius <= float64(stroke)/2 {
			continue
		}
		drawRing(img, cx, cy, radius, float64(stroke), outline)
	}
	return img, nil
}

// drawRing paints every pixel whose center lies within stroke/2 of the
// circle of the given radius.
func drawRing(img *image.RGBA, cx, cy, radius, stroke float64, c color.RGBA) {
	bounds := img.Bounds()
	outer := radius + stroke/2
	minX := clampInt(int(math.Floor(cx-outer)), bounds.Min.X, bounds.Max.X)
	maxX := clampInt(int(math.Ceil(cx+outer)), bounds.Min.X, bounds.Max.X)
	minY := clampInt(int(math.Floor(cy-outer)), bounds.Min.Y, bounds.Max.Y)
	maxY := clampInt(int(math.Ceil(cy+outer)), bounds.Min.Y, bounds.Max.Y)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if math.Abs(d-radius) <= stroke/2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
